package response

import (
	"time"

	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase"
)

type OrderResponse struct {
	ID            string                 `json:"id"`
	OrderNumber   string                 `json:"order_number"`
	PaymentStatus string                 `json:"payment_status"`
	Amount        string                 `json:"amount"`
	Currency      string                 `json:"currency"`
	PaymentMethod string                 `json:"payment_method"`
	Gateway       string                 `json:"gateway"`
	CustomerEmail string                 `json:"customer_email"`
	Description   string                 `json:"description,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		PaymentStatus: string(o.PaymentStatus),
		Amount:        o.Amount.String(),
		Currency:      string(o.Currency),
		PaymentMethod: string(o.PaymentMethod),
		Gateway:       string(o.Gateway),
		CustomerEmail: o.CustomerEmail,
		Description:   o.Description,
		Metadata:      o.Metadata,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type CheckoutResponse struct {
	Order                OrderResponse `json:"order"`
	RedirectURL          string        `json:"redirect_url,omitempty"`
	TransactionID        string        `json:"transaction_id,omitempty"`
	ProcessedImmediately bool          `json:"processed_immediately"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Order:                FromOrder(r.Order),
		RedirectURL:          r.RedirectURL,
		TransactionID:        r.TransactionID,
		ProcessedImmediately: r.ProcessedImmediately,
	}
}

// WebhookAck is what providers get back. They only look at the status code.
type WebhookAck struct {
	Received  bool   `json:"received"`
	Processed bool   `json:"processed"`
	EventID   string `json:"event_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

func FromWebhookResult(r usecase.WebhookProcessResult) WebhookAck {
	return WebhookAck{
		Received:  r.Success,
		Processed: r.Processed,
		EventID:   r.EventID,
		Message:   r.Error,
	}
}
