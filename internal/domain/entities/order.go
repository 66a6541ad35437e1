package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the order-level payment state.
//
// Transitions only move forward (see CanAdvanceTo). A late PENDING
// notification never downgrades a COMPLETED order.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// PaymentStatusFromTransaction maps a normalized gateway status onto the order.
func PaymentStatusFromTransaction(s TransactionStatus) PaymentStatus {
	switch s {
	case TransactionStatusApproved:
		return PaymentStatusCompleted
	case TransactionStatusDeclined, TransactionStatusError:
		return PaymentStatusFailed
	case TransactionStatusVoided:
		return PaymentStatusCancelled
	default:
		return PaymentStatusProcessing
	}
}

// CanAdvanceTo reports whether moving from s to next is allowed.
// Rewriting the same status is always allowed.
func (s PaymentStatus) CanAdvanceTo(next PaymentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PaymentStatusPending, "":
		return true
	case PaymentStatusProcessing:
		return next != PaymentStatusPending
	case PaymentStatusFailed:
		return next == PaymentStatusProcessing || next == PaymentStatusCompleted || next == PaymentStatusCancelled
	case PaymentStatusCancelled:
		return next == PaymentStatusCompleted
	case PaymentStatusCompleted:
		return next == PaymentStatusRefunded || next == PaymentStatusCancelled
	}
	return false
}

// Order is the purchase a payment settles.
//
// Storage model (DynamoDB):
//   - PK: order_number (the reference echoed back by every provider)
//   - Amount is persisted as a decimal string
//
// Metadata holds per-gateway keys such as wompiTransactionId, wompiStatus
// and wompiUpdatedAt (see MetadataKey).

type Order struct {
	ID            string                 `json:"id"`
	OrderNumber   string                 `json:"order_number"`
	UserID        string                 `json:"user_id"`
	CustomerEmail string                 `json:"customer_email"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	Description   string                 `json:"description,omitempty"`
	PaymentStatus PaymentStatus          `json:"payment_status"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      Currency               `json:"currency"`
	PaymentMethod PaymentMethodType      `json:"payment_method"`
	Gateway       GatewayName            `json:"gateway"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

const (
	MetadataTransactionID = "TransactionId"
	MetadataStatus        = "Status"
	MetadataUpdatedAt     = "UpdatedAt"
	MetadataCaptureID     = "CaptureId"
	MetadataRefundID      = "RefundId"
	MetadataRefundStatus  = "RefundStatus"
)

// MetadataKey builds a gateway-scoped metadata key, e.g. "paypalTransactionId".
func MetadataKey(g GatewayName, suffix string) string {
	return string(g) + suffix
}

// MetadataString returns the metadata value under key when it is a non-empty string.
func (o Order) MetadataString(key string) string {
	if o.Metadata == nil {
		return ""
	}
	if v, ok := o.Metadata[key].(string); ok {
		return v
	}
	return ""
}

// TransactionID is the provider transaction last recorded for the order's gateway.
func (o Order) TransactionID() string {
	return o.MetadataString(MetadataKey(o.Gateway, MetadataTransactionID))
}
