package interfaces

import (
	"context"
	"energia_divinidad/internal/domain/entities"
	"time"
)

// IWebhookEventRepository persists webhook dedup records.
//
// CreateIfNotExists is the atomic "first writer wins" step: created=false
// means another delivery already recorded the same event, and stored holds it.
// ClaimForRetry atomically takes over an unprocessed event that either failed
// or has been in flight since before staleBefore.

type IWebhookEventRepository interface {
	CreateIfNotExists(ctx context.Context, e entities.WebhookEvent) (created bool, stored entities.WebhookEvent, err error)
	ClaimForRetry(ctx context.Context, eventID string, staleBefore time.Time) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, errorMessage string) error
}
