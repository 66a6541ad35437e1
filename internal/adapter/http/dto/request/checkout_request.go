package request

import (
	"errors"
	"strings"

	"energia_divinidad/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// CheckoutRequest is the payload for POST /v1/checkout.
//
// `amount` is a decimal string ("50000", "19.99") so no precision is lost on
// the way in. `gateway` is optional and forces a specific provider.

type CheckoutRequest struct {
	Amount        string                 `json:"amount" binding:"required"`
	Currency      string                 `json:"currency" binding:"required"`
	PaymentMethod string                 `json:"payment_method" binding:"required"`
	Gateway       string                 `json:"gateway,omitempty"`
	UserID        string                 `json:"user_id,omitempty"`
	Description   string                 `json:"description,omitempty"`
	RedirectURL   string                 `json:"redirect_url,omitempty"`
	CancelURL     string                 `json:"cancel_url,omitempty"`
	Customer      CustomerRequest        `json:"customer"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type CustomerRequest struct {
	Email          string `json:"email" binding:"required"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

func (r CheckoutRequest) ResolveAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func (r CheckoutRequest) ResolveCurrency() entities.Currency {
	return entities.Currency(strings.ToUpper(strings.TrimSpace(r.Currency)))
}

func (r CheckoutRequest) ResolvePaymentMethod() entities.PaymentMethodType {
	return entities.PaymentMethodType(strings.ToUpper(strings.TrimSpace(r.PaymentMethod)))
}

func (r CheckoutRequest) ResolveGateway() entities.GatewayName {
	return entities.GatewayName(strings.ToLower(strings.TrimSpace(r.Gateway)))
}

func (r CheckoutRequest) ResolveCustomer() entities.CustomerInfo {
	return entities.CustomerInfo{
		Email:          strings.TrimSpace(r.Customer.Email),
		FullName:       strings.TrimSpace(r.Customer.FullName),
		Phone:          strings.TrimSpace(r.Customer.Phone),
		DocumentType:   strings.TrimSpace(r.Customer.DocumentType),
		DocumentNumber: strings.TrimSpace(r.Customer.DocumentNumber),
	}
}

// RefundRequest is the payload for POST /v1/orders/{order_number}/refund.
// An empty amount refunds the whole order.
type RefundRequest struct {
	Amount string `json:"amount,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func (r RefundRequest) ResolveAmount() (decimal.Decimal, error) {
	s := strings.TrimSpace(r.Amount)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
