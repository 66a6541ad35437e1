package interfaces

import (
	"context"
	"energia_divinidad/internal/domain/entities"
)

// IPaymentGateway abstracts one external payment provider (Wompi, PayPal, Nequi, ePayco).
//
// CreatePayment returns a Go error only for configuration or validation
// problems (not configured, unsupported currency or method). Provider-side
// failures come back as a result with Success=false.
//
// VerifyWebhook never returns an error: anything wrong with the request,
// including network failures while verifying, yields Valid=false.

type IPaymentGateway interface {
	Name() entities.GatewayName
	SupportedCurrencies() []entities.Currency
	SupportedMethods() []entities.PaymentMethodType
	IsConfigured() bool
	CreatePayment(ctx context.Context, params entities.CreatePaymentParams) (entities.CreatePaymentResult, error)
	VerifyWebhook(ctx context.Context, req entities.WebhookRequest) entities.WebhookVerificationResult
	GetTransactionStatus(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error)
}

// IRefundableGateway is implemented by gateways that can refund a settled payment.
type IRefundableGateway interface {
	IPaymentGateway
	Refund(ctx context.Context, params entities.RefundParams) (entities.RefundResult, error)
}

// ICapturableGateway is implemented by gateways whose approved orders must be captured explicitly.
type ICapturableGateway interface {
	IPaymentGateway
	CaptureOrder(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error)
}
