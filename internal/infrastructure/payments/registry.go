package payments

import (
	"errors"

	"energia_divinidad/internal/config"
	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrRegistryIncomplete = errors.New("wompi and paypal gateways are required")

var _ interfaces.IGatewaySelector = (*Registry)(nil)

// Registry holds one adapter per provider. It is built once at start-up and
// injected wherever a gateway has to be resolved.
type Registry struct {
	gateways map[entities.GatewayName]interfaces.IPaymentGateway
}

// NewRegistry requires Wompi and PayPal since the selector always falls back
// to one of them. Nequi and ePayco are optional.
func NewRegistry(wompi, paypal, nequi, epayco interfaces.IPaymentGateway) (*Registry, error) {
	if wompi == nil || paypal == nil {
		return nil, ErrRegistryIncomplete
	}
	r := &Registry{gateways: map[entities.GatewayName]interfaces.IPaymentGateway{
		entities.GatewayWompi:  wompi,
		entities.GatewayPayPal: paypal,
	}}
	if nequi != nil {
		r.gateways[entities.GatewayNequi] = nequi
	}
	if epayco != nil {
		r.gateways[entities.GatewayEpayco] = epayco
	}
	return r, nil
}

// NewRegistryFromConfig builds every adapter from cfg. Unconfigured adapters
// are still registered and report IsConfigured false.
func NewRegistryFromConfig(cfg *config.Config, logger *zap.Logger) (*Registry, error) {
	client := NewHTTPClient(cfg.GatewayHTTPTimeout)
	return NewRegistry(
		NewWompiGateway(cfg.Wompi, client, logger),
		NewPayPalGateway(cfg.PayPal, client, logger),
		NewNequiGateway(cfg.Nequi, client, logger),
		NewEpaycoGateway(cfg.Epayco, client, logger),
	)
}
