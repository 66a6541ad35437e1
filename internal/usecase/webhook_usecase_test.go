package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"energia_divinidad/internal/domain/entities"
	mock_interfaces "energia_divinidad/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var webhookNow = time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)

type webhookMocks struct {
	selector    *mock_interfaces.MockIGatewaySelector
	gateway     *mock_interfaces.MockIPaymentGateway
	orders      *mock_interfaces.MockIOrderRepository
	events      *mock_interfaces.MockIWebhookEventRepository
	fulfillment *mock_interfaces.MockIOrderFulfillment
	uc          *WebhookUseCase
}

func newWebhookMocks(t *testing.T) *webhookMocks {
	ctrl := gomock.NewController(t)
	m := &webhookMocks{
		selector:    mock_interfaces.NewMockIGatewaySelector(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		events:      mock_interfaces.NewMockIWebhookEventRepository(ctrl),
		fulfillment: mock_interfaces.NewMockIOrderFulfillment(ctrl),
	}
	m.uc = NewWebhookUseCase(m.selector, m.orders, m.events, m.fulfillment, time.Minute, nil)
	m.uc.now = func() time.Time { return webhookNow }
	m.selector.EXPECT().Get(entities.GatewayWompi).Return(m.gateway, true).AnyTimes()
	return m
}

func approvedVerification() entities.WebhookVerificationResult {
	return entities.WebhookVerificationResult{
		Valid:         true,
		EventType:     "transaction.updated",
		TransactionID: "tx-1",
		Status:        entities.TransactionStatusApproved,
		NativeStatus:  "APPROVED",
		Reference:     "ED-1",
		Amount:        decimal.NewFromInt(50000),
		Currency:      entities.CurrencyCOP,
		RawPayload:    []byte(`{"event":"transaction.updated"}`),
	}
}

func pendingOrder() entities.Order {
	return entities.Order{
		ID:            "ord-1",
		OrderNumber:   "ED-1",
		PaymentStatus: entities.PaymentStatusPending,
		Amount:        decimal.NewFromInt(50000),
		Currency:      entities.CurrencyCOP,
		Gateway:       entities.GatewayWompi,
		Metadata:      map[string]interface{}{"source": "web"},
	}
}

var webhookReq = entities.WebhookRequest{Body: []byte(`{"event":"transaction.updated"}`)}

func TestBuildWebhookEventID(t *testing.T) {
	got := BuildWebhookEventID(entities.GatewayPayPal, "5O190127TN364715T", entities.TransactionStatusApproved)
	if got != "paypal_5O190127TN364715T_APPROVED" {
		t.Fatalf("unexpected event id %q", got)
	}
}

func TestWebhookUseCase_ProcessPaymentWebhook(t *testing.T) {
	t.Run("unknown gateway", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.selector.EXPECT().Get(entities.GatewayName("stripe")).Return(nil, false)

		_, err := m.uc.ProcessPaymentWebhook(context.Background(), "stripe", webhookReq)
		if !errors.Is(err, ErrUnknownGateway) {
			t.Fatalf("expected ErrUnknownGateway, got %v", err)
		}
	})

	t.Run("invalid signature persists nothing", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(entities.WebhookVerificationResult{Valid: false, Error: "invalid signature"})

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Processed || res.Retryable || res.Error != "invalid signature" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("verified result without transaction id is rejected", func(t *testing.T) {
		m := newWebhookMocks(t)
		v := approvedVerification()
		v.TransactionID = "  "
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(v)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Processed || res.EventID != "" || res.Error != "missing transaction id" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("approved payment completes order and fulfills", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.WebhookEvent) (bool, entities.WebhookEvent, error) {
				if e.EventID != "wompi_tx-1_APPROVED" || e.Reference != "ED-1" || e.Provider != entities.GatewayWompi {
					t.Fatalf("unexpected event %+v", e)
				}
				if e.Payload != `{"event":"transaction.updated"}` || e.Processed {
					t.Fatalf("unexpected event payload %+v", e)
				}
				return true, e, nil
			})
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().UpdatePayment(gomock.Any(), "ED-1", entities.PaymentStatusCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["wompiTransactionId"] != "tx-1" || md["wompiStatus"] != "APPROVED" {
					t.Fatalf("unexpected metadata %+v", md)
				}
				if md["wompiUpdatedAt"] != "2026-10-14T15:00:00Z" || md["source"] != "web" {
					t.Fatalf("unexpected metadata %+v", md)
				}
				o := pendingOrder()
				o.PaymentStatus = status
				o.Metadata = md
				return o, nil
			})
		m.fulfillment.EXPECT().ProcessApprovedPayment(gomock.Any(), gomock.Any(), "tx-1").DoAndReturn(
			func(_ context.Context, o entities.Order, _ string) error {
				if o.PaymentStatus != entities.PaymentStatusCompleted {
					t.Fatalf("fulfillment got status %s", o.PaymentStatus)
				}
				return nil
			})
		m.events.EXPECT().MarkProcessed(gomock.Any(), "wompi_tx-1_APPROVED").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || !res.Processed || res.Status != entities.PaymentStatusCompleted || res.EventID != "wompi_tx-1_APPROVED" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("already processed event is acknowledged", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, entities.WebhookEvent{EventID: "wompi_tx-1_APPROVED", Processed: true}, nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Processed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("in flight event is not reprocessed", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, entities.WebhookEvent{EventID: "wompi_tx-1_APPROVED"}, nil)
		m.events.EXPECT().ClaimForRetry(gomock.Any(), "wompi_tx-1_APPROVED", webhookNow.Add(-time.Minute)).Return(false, nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Processed || res.Error != "webhook event already in progress" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("failed event is retried", func(t *testing.T) {
		m := newWebhookMocks(t)
		completed := pendingOrder()
		completed.PaymentStatus = entities.PaymentStatusCompleted

		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, entities.WebhookEvent{EventID: "wompi_tx-1_APPROVED", Failed: true, RetryCount: 1}, nil)
		m.events.EXPECT().ClaimForRetry(gomock.Any(), "wompi_tx-1_APPROVED", gomock.Any()).Return(true, nil)
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(completed, nil)
		m.orders.EXPECT().UpdatePayment(gomock.Any(), "ED-1", entities.PaymentStatusCompleted, gomock.Any()).Return(completed, nil)
		m.fulfillment.EXPECT().ProcessApprovedPayment(gomock.Any(), completed, "tx-1").Return(nil)
		m.events.EXPECT().MarkProcessed(gomock.Any(), "wompi_tx-1_APPROVED").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || !res.Processed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, entities.WebhookEvent{}, nil)
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(entities.Order{}, nil)
		m.events.EXPECT().MarkProcessed(gomock.Any(), "wompi_tx-1_APPROVED").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Processed || res.Error != "Order not found: ED-1" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		m := newWebhookMocks(t)
		v := approvedVerification()
		v.Reference = ""
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(v)
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, entities.WebhookEvent{}, nil)
		m.events.EXPECT().MarkProcessed(gomock.Any(), "wompi_tx-1_APPROVED").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Processed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("fulfillment failure is retryable", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, entities.WebhookEvent{}, nil)
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().UpdatePayment(gomock.Any(), "ED-1", entities.PaymentStatusCompleted, gomock.Any()).Return(entities.Order{}, nil)
		m.fulfillment.EXPECT().ProcessApprovedPayment(gomock.Any(), gomock.Any(), "tx-1").Return(errors.New("broker unavailable"))
		m.events.EXPECT().MarkFailed(gomock.Any(), "wompi_tx-1_APPROVED", "broker unavailable").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || !res.Retryable || res.Processed {
			t.Fatalf("unexpected result %+v", res)
		}
		if !strings.Contains(res.Error, "broker unavailable") {
			t.Fatalf("unexpected error message %q", res.Error)
		}
	})

	t.Run("late pending keeps completed status", func(t *testing.T) {
		m := newWebhookMocks(t)
		v := approvedVerification()
		v.Status = entities.TransactionStatusPending
		completed := pendingOrder()
		completed.PaymentStatus = entities.PaymentStatusCompleted

		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(v)
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, entities.WebhookEvent{}, nil)
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(completed, nil)
		m.orders.EXPECT().UpdatePayment(gomock.Any(), "ED-1", entities.PaymentStatusCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.PaymentStatus, md map[string]interface{}) (entities.Order, error) {
				if md["wompiStatus"] != "PENDING" {
					t.Fatalf("metadata should still be recorded, got %+v", md)
				}
				return completed, nil
			})
		m.events.EXPECT().MarkProcessed(gomock.Any(), "wompi_tx-1_PENDING").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Processed || res.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("declined payment fails order without fulfillment", func(t *testing.T) {
		m := newWebhookMocks(t)
		v := approvedVerification()
		v.Status = entities.TransactionStatusDeclined
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(v)
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, entities.WebhookEvent{}, nil)
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().UpdatePayment(gomock.Any(), "ED-1", entities.PaymentStatusFailed, gomock.Any()).Return(entities.Order{}, nil)
		m.events.EXPECT().MarkProcessed(gomock.Any(), "wompi_tx-1_DECLINED").Return(nil)

		res, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Processed || res.Status != entities.PaymentStatusFailed {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("event store error", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(false, entities.WebhookEvent{}, errors.New("db"))

		_, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err == nil || !strings.Contains(err.Error(), "db") {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order update error marks event failed", func(t *testing.T) {
		m := newWebhookMocks(t)
		m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(approvedVerification())
		m.events.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Return(true, entities.WebhookEvent{}, nil)
		m.orders.EXPECT().GetByOrderNumber(gomock.Any(), "ED-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().UpdatePayment(gomock.Any(), "ED-1", gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("throttled"))
		m.events.EXPECT().MarkFailed(gomock.Any(), "wompi_tx-1_APPROVED", "throttled").Return(nil)

		_, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq)
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestWebhookUseCase_LogsComponentOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newWebhookMocks(t)
	m.uc = NewWebhookUseCase(m.selector, m.orders, m.events, m.fulfillment, time.Minute, zap.New(core))
	m.gateway.EXPECT().VerifyWebhook(gomock.Any(), webhookReq).Return(entities.WebhookVerificationResult{Valid: false, Error: "invalid signature"})

	if _, err := m.uc.ProcessPaymentWebhook(context.Background(), entities.GatewayWompi, webhookReq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) == 0 {
		t.Fatalf("expected a log entry for the rejected webhook")
	}
	for _, e := range entries {
		var components []string
		for _, f := range e.Context {
			if f.Key == "component" {
				components = append(components, f.String)
			}
		}
		if len(components) != 1 || components[0] != "webhook" {
			t.Fatalf("%q: expected a single component=webhook field, got %v", e.Message, components)
		}
	}
}
