package interfaces

import (
	"context"
	"energia_divinidad/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups return a zero Order (empty ID) and a nil error when nothing matches.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	UpdatePayment(ctx context.Context, orderNumber string, status entities.PaymentStatus, metadata map[string]interface{}) (entities.Order, error)
}
