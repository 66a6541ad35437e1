package interfaces

import "energia_divinidad/internal/domain/entities"

// IGatewaySelector resolves which gateway serves a payment.
//
// GetGatewayForPayment is total: it always returns a gateway, even when the
// chosen one is not configured. Callers check IsConfigured themselves.

type IGatewaySelector interface {
	GetGatewayForPayment(method entities.PaymentMethodType, currency entities.Currency) IPaymentGateway
	Get(name entities.GatewayName) (IPaymentGateway, bool)
}
