package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultInflightLease = 5 * time.Minute

	errMissingTransactionID = "missing transaction id"
)

var (
	ErrUnknownGateway = errors.New("unknown payment gateway")
)

// WebhookProcessResult is the outcome of one webhook delivery.
//
// Success=false with Retryable=false means the request was rejected (bad
// signature, malformed body). Retryable=true asks the provider to redeliver.
// Processed is true only when this delivery did the work; duplicates report
// Success=true and Processed=false.

type WebhookProcessResult struct {
	Success     bool                   `json:"success"`
	Processed   bool                   `json:"processed"`
	Retryable   bool                   `json:"-"`
	EventID     string                 `json:"event_id,omitempty"`
	OrderNumber string                 `json:"order_number,omitempty"`
	Status      entities.PaymentStatus `json:"payment_status,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

type IWebhookUseCase interface {
	ProcessPaymentWebhook(ctx context.Context, gateway entities.GatewayName, req entities.WebhookRequest) (WebhookProcessResult, error)
}

type WebhookUseCase struct {
	selector      interfaces.IGatewaySelector
	orders        interfaces.IOrderRepository
	events        interfaces.IWebhookEventRepository
	fulfillment   interfaces.IOrderFulfillment
	inflightLease time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	selector interfaces.IGatewaySelector,
	orders interfaces.IOrderRepository,
	events interfaces.IWebhookEventRepository,
	fulfillment interfaces.IOrderFulfillment,
	inflightLease time.Duration,
	logger *zap.Logger,
) *WebhookUseCase {
	if inflightLease <= 0 {
		inflightLease = defaultInflightLease
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookUseCase{
		selector:      selector,
		orders:        orders,
		events:        events,
		fulfillment:   fulfillment,
		inflightLease: inflightLease,
		logger:        logger.With(zap.String("component", "webhook")),
		now:           time.Now,
	}
}

// BuildWebhookEventID is the dedup key for a notification. Redeliveries of the
// same provider event collapse; status changes of one transaction do not.
func BuildWebhookEventID(provider entities.GatewayName, transactionID string, status entities.TransactionStatus) string {
	return fmt.Sprintf("%s_%s_%s", provider, transactionID, status)
}

// ProcessPaymentWebhook verifies a provider notification and applies it to
// the referenced order at most once per event id.
//
// Storage failures are returned as errors. Everything else, including bad
// signatures, is reported in the result.
func (u *WebhookUseCase) ProcessPaymentWebhook(ctx context.Context, name entities.GatewayName, req entities.WebhookRequest) (WebhookProcessResult, error) {
	gw, ok := u.selector.Get(name)
	if !ok {
		return WebhookProcessResult{}, fmt.Errorf("%w: %s", ErrUnknownGateway, name)
	}
	log := u.logger.With(zap.String("gateway", string(name)))

	v := gw.VerifyWebhook(ctx, req)
	if !v.Valid {
		log.Warn("webhook rejected", zap.String("reason", v.Error))
		return WebhookProcessResult{Success: false, Error: v.Error}, nil
	}
	// The transaction id is part of the event id; without it every such
	// delivery would collapse onto one ledger row.
	if strings.TrimSpace(v.TransactionID) == "" {
		log.Warn("webhook rejected", zap.String("reason", errMissingTransactionID), zap.String("reference", v.Reference))
		return WebhookProcessResult{Success: false, Error: errMissingTransactionID}, nil
	}

	eventID := BuildWebhookEventID(name, v.TransactionID, v.Status)
	log = log.With(zap.String("event_id", eventID), zap.String("reference", v.Reference))
	res := WebhookProcessResult{Success: true, EventID: eventID, OrderNumber: v.Reference}

	now := u.now().UTC()
	payload := v.RawPayload
	if len(payload) == 0 {
		payload = req.Body
	}
	created, stored, err := u.events.CreateIfNotExists(ctx, entities.WebhookEvent{
		EventID:       eventID,
		Provider:      name,
		EventType:     v.EventType,
		TransactionID: v.TransactionID,
		Reference:     v.Reference,
		Payload:       string(payload),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return WebhookProcessResult{}, fmt.Errorf("record webhook event %s: %w", eventID, err)
	}
	if !created {
		if stored.Processed {
			log.Info("duplicate webhook ignored")
			return res, nil
		}
		claimed, err := u.events.ClaimForRetry(ctx, eventID, now.Add(-u.inflightLease))
		if err != nil {
			return WebhookProcessResult{}, fmt.Errorf("claim webhook event %s: %w", eventID, err)
		}
		if !claimed {
			log.Info("webhook event already in progress")
			res.Error = "webhook event already in progress"
			return res, nil
		}
		log.Info("retrying webhook event", zap.Int("retry_count", stored.RetryCount))
	}

	if v.Reference == "" {
		log.Warn("webhook has no order reference", zap.String("transaction_id", v.TransactionID))
		u.markProcessed(ctx, log, eventID)
		return res, nil
	}

	order, err := u.orders.GetByOrderNumber(ctx, v.Reference)
	if err != nil {
		u.markFailed(ctx, log, eventID, err)
		return WebhookProcessResult{}, fmt.Errorf("load order %s: %w", v.Reference, err)
	}
	if order.OrderNumber == "" {
		log.Warn("order not found for webhook")
		res.Error = "Order not found: " + v.Reference
		u.markProcessed(ctx, log, eventID)
		return res, nil
	}

	status, advanced := nextPaymentStatus(order.PaymentStatus, v.Status)
	if !advanced {
		log.Info("stale status ignored",
			zap.String("current", string(order.PaymentStatus)),
			zap.String("incoming", string(v.Status)))
	}
	metadata := mergeGatewayMetadata(order.Metadata, gatewayUpdate{
		gateway:       name,
		transactionID: v.TransactionID,
		status:        v.Status,
		captureID:     v.CaptureID,
	}, now)

	updated, err := u.orders.UpdatePayment(ctx, order.OrderNumber, status, metadata)
	if err != nil {
		u.markFailed(ctx, log, eventID, err)
		return WebhookProcessResult{}, fmt.Errorf("update order %s: %w", order.OrderNumber, err)
	}
	updated = orDefault(updated, order, status, metadata)
	res.Status = updated.PaymentStatus

	switch v.Status {
	case entities.TransactionStatusApproved:
		if updated.PaymentStatus == entities.PaymentStatusCompleted {
			if err := u.fulfillment.ProcessApprovedPayment(ctx, updated, v.TransactionID); err != nil {
				log.Error("order fulfillment failed", zap.Error(err))
				u.markFailed(ctx, log, eventID, err)
				res.Success = false
				res.Retryable = true
				res.Error = "fulfillment failed: " + err.Error()
				return res, nil
			}
			log.Info("payment approved and handed to fulfillment", zap.String("transaction_id", v.TransactionID))
		}
	case entities.TransactionStatusDeclined, entities.TransactionStatusError, entities.TransactionStatusVoided:
		log.Info("payment not approved",
			zap.String("status", string(v.Status)),
			zap.String("native_status", v.NativeStatus))
	}

	u.markProcessed(ctx, log, eventID)
	res.Processed = true
	return res, nil
}

func (u *WebhookUseCase) markProcessed(ctx context.Context, log *zap.Logger, eventID string) {
	if err := u.events.MarkProcessed(ctx, eventID); err != nil {
		log.Error("mark webhook event processed", zap.Error(err))
	}
}

func (u *WebhookUseCase) markFailed(ctx context.Context, log *zap.Logger, eventID string, cause error) {
	if err := u.events.MarkFailed(ctx, eventID, cause.Error()); err != nil {
		log.Error("mark webhook event failed", zap.Error(err))
	}
}
