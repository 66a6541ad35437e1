package payments

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"energia_divinidad/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
	ErrUnsupportedCurrency      = errors.New("unsupported currency")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidPaymentParams     = errors.New("invalid payment params")
)

// baseGateway holds what every adapter shares: identity, supported
// currencies/methods and the gateway-scoped logger.
type baseGateway struct {
	name       entities.GatewayName
	currencies []entities.Currency
	methods    []entities.PaymentMethodType
	logger     *zap.Logger
}

func newBaseGateway(name entities.GatewayName, currencies []entities.Currency, methods []entities.PaymentMethodType, logger *zap.Logger) baseGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseGateway{
		name:       name,
		currencies: currencies,
		methods:    methods,
		logger:     logger.With(zap.String("component", "payments"), zap.String("gateway", string(name))),
	}
}

func (b baseGateway) Name() entities.GatewayName { return b.name }

func (b baseGateway) SupportedCurrencies() []entities.Currency {
	return slices.Clone(b.currencies)
}

func (b baseGateway) SupportedMethods() []entities.PaymentMethodType {
	return slices.Clone(b.methods)
}

// validateParams runs the checks that make CreatePayment return an error
// instead of a failed result.
func (b baseGateway) validateParams(configured bool, p entities.CreatePaymentParams) error {
	if !configured {
		return fmt.Errorf("%w: %s", ErrGatewayNotConfigured, b.name)
	}
	if !slices.Contains(b.currencies, p.Currency) {
		return fmt.Errorf("%w: %s does not support %s", ErrUnsupportedCurrency, b.name.Label(), p.Currency)
	}
	if !slices.Contains(b.methods, p.PaymentMethod) {
		return fmt.Errorf("%w: %s does not support %s", ErrUnsupportedPaymentMethod, b.name.Label(), p.PaymentMethod)
	}
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(p.OrderNumber) == "" {
		return fmt.Errorf("%w: order number is required", ErrInvalidPaymentParams)
	}
	return nil
}

func paymentFailure(code, message string) entities.CreatePaymentResult {
	return entities.CreatePaymentResult{
		Success:   false,
		Status:    entities.TransactionStatusError,
		Error:     message,
		ErrorCode: code,
	}
}

func invalidWebhook(reason string) entities.WebhookVerificationResult {
	return entities.WebhookVerificationResult{Valid: false, Error: reason}
}

var hundred = decimal.NewFromInt(100)

// toCents rounds half away from zero, so 1.005 COP becomes 101 cents.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// formatAmount renders the amount the way providers expect it: COP has no
// minor units in practice, USD and EUR use two decimals.
func formatAmount(amount decimal.Decimal, currency entities.Currency) string {
	if currency == entities.CurrencyCOP {
		return amount.Round(0).StringFixed(0)
	}
	return amount.StringFixed(2)
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
