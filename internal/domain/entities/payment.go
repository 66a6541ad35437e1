package entities

import (
	"net/http"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyCOP, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

type PaymentMethodType string

const (
	PaymentMethodCard         PaymentMethodType = "CARD"
	PaymentMethodPSE          PaymentMethodType = "PSE"
	PaymentMethodNequi        PaymentMethodType = "NEQUI"
	PaymentMethodBankTransfer PaymentMethodType = "BANK_TRANSFER"
	PaymentMethodPayPal       PaymentMethodType = "PAYPAL"
)

func (m PaymentMethodType) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPSE, PaymentMethodNequi, PaymentMethodBankTransfer, PaymentMethodPayPal:
		return true
	}
	return false
}

// TransactionStatus is the provider-neutral status every gateway maps its
// native codes onto. Unknown native codes map to TransactionStatusPending.

type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusDeclined TransactionStatus = "DECLINED"
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusError    TransactionStatus = "ERROR"
	TransactionStatusVoided   TransactionStatus = "VOIDED"
)

type GatewayName string

const (
	GatewayWompi  GatewayName = "wompi"
	GatewayPayPal GatewayName = "paypal"
	GatewayNequi  GatewayName = "nequi"
	GatewayEpayco GatewayName = "epayco"
)

// Label is the provider's display name, used in customer-facing messages.
func (g GatewayName) Label() string {
	switch g {
	case GatewayWompi:
		return "Wompi"
	case GatewayPayPal:
		return "PayPal"
	case GatewayNequi:
		return "Nequi"
	case GatewayEpayco:
		return "ePayco"
	}
	return string(g)
}

func (g GatewayName) Valid() bool {
	switch g {
	case GatewayWompi, GatewayPayPal, GatewayNequi, GatewayEpayco:
		return true
	}
	return false
}

type CustomerInfo struct {
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// CreatePaymentParams is what the checkout hands to a gateway.
// OrderNumber is the reference every provider echoes back in its webhooks.
type CreatePaymentParams struct {
	Amount        decimal.Decimal
	Currency      Currency
	OrderID       string
	OrderNumber   string
	Description   string
	Customer      CustomerInfo
	PaymentMethod PaymentMethodType
	RedirectURL   string
	CancelURL     string
	WebhookURL    string
}

// CreatePaymentResult carries provider-side failures in Success/Error
// instead of a Go error, so a declined payment is never an exception.
type CreatePaymentResult struct {
	Success              bool
	RedirectURL          string
	TransactionID        string
	Status               TransactionStatus
	ProcessedImmediately bool
	Error                string
	ErrorCode            string
}

// WebhookRequest is the raw inbound notification. Body must be the exact
// bytes received since signatures are computed over them.
type WebhookRequest struct {
	Headers http.Header
	Body    []byte
}

type WebhookVerificationResult struct {
	Valid         bool
	EventType     string
	TransactionID string
	Status        TransactionStatus
	NativeStatus  string
	Reference     string
	Amount        decimal.Decimal
	Currency      Currency
	CaptureID     string
	RawPayload    []byte
	Error         string
}

type TransactionStatusResult struct {
	TransactionID string
	Status        TransactionStatus
	NativeStatus  string
	Reference     string
	Amount        decimal.Decimal
	Currency      Currency
	// CaptureID is only set by gateways with a separate capture step (PayPal).
	CaptureID string
}

// RefundParams refunds the whole captured amount when Amount is zero.
type RefundParams struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      Currency
	Reason        string
}

type RefundResult struct {
	Success      bool
	RefundID     string
	NativeStatus string
	Error        string
	ErrorCode    string
}
