package interfaces

import (
	"context"
	"energia_divinidad/internal/domain/entities"
)

// IOrderFulfillment hands an approved order to whatever delivers the purchase.
// A returned error makes the webhook retryable.
type IOrderFulfillment interface {
	ProcessApprovedPayment(ctx context.Context, order entities.Order, transactionID string) error
}
