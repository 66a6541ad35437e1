package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventTypePaymentApproved = "payment.approved"
	writeTimeout             = 10 * time.Second
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentApprovedEvent is the message consumed by order fulfillment.
type PaymentApprovedEvent struct {
	EventType     string               `json:"event_type"`
	OrderID       string               `json:"order_id"`
	OrderNumber   string               `json:"order_number"`
	UserID        string               `json:"user_id,omitempty"`
	CustomerEmail string               `json:"customer_email"`
	Gateway       entities.GatewayName `json:"gateway"`
	TransactionID string               `json:"transaction_id"`
	Amount        string               `json:"amount"`
	Currency      entities.Currency    `json:"currency"`
	ApprovedAt    time.Time            `json:"approved_at"`
}

// KafkaFulfillmentPublisher hands approved orders to fulfillment through a
// Kafka topic. Writes are synchronous so a broker failure reaches the webhook
// processor and the provider redelivers.
type KafkaFulfillmentPublisher struct {
	writer messageWriter
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.IOrderFulfillment = (*KafkaFulfillmentPublisher)(nil)

func NewKafkaFulfillmentPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaFulfillmentPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "fulfillment"), zap.String("topic", topic))
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: writeTimeout,
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(msg string, args ...interface{}) { logger.Debug(fmt.Sprintf(msg, args...)) }),
		ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...interface{}) { logger.Error(fmt.Sprintf(msg, args...)) }),
	}
	return newKafkaFulfillmentPublisher(writer, logger)
}

func newKafkaFulfillmentPublisher(w messageWriter, logger *zap.Logger) *KafkaFulfillmentPublisher {
	return &KafkaFulfillmentPublisher{writer: w, logger: logger, now: time.Now}
}

func (p *KafkaFulfillmentPublisher) ProcessApprovedPayment(ctx context.Context, order entities.Order, transactionID string) error {
	value, err := json.Marshal(PaymentApprovedEvent{
		EventType:     EventTypePaymentApproved,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID,
		CustomerEmail: order.CustomerEmail,
		Gateway:       order.Gateway,
		TransactionID: transactionID,
		Amount:        order.Amount.String(),
		Currency:      order.Currency,
		ApprovedAt:    p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal payment approved event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypePaymentApproved)},
		},
	})
	if err != nil {
		p.logger.Error("failed to publish payment approved event",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish payment approved event: %w", err)
	}
	p.logger.Info("payment approved event published",
		zap.String("order_number", order.OrderNumber),
		zap.String("transaction_id", transactionID),
	)
	return nil
}

func (p *KafkaFulfillmentPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close fulfillment publisher: %w", err)
	}
	p.logger.Info("fulfillment publisher closed")
	return nil
}

// LogFulfillment only logs approved orders. It is used when no broker is configured.
type LogFulfillment struct {
	logger *zap.Logger
}

var _ interfaces.IOrderFulfillment = (*LogFulfillment)(nil)

func NewLogFulfillment(logger *zap.Logger) *LogFulfillment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogFulfillment{logger: logger.With(zap.String("component", "fulfillment"))}
}

func (f *LogFulfillment) ProcessApprovedPayment(_ context.Context, order entities.Order, transactionID string) error {
	f.logger.Warn("no fulfillment broker configured, approved order only logged",
		zap.String("order_number", order.OrderNumber),
		zap.String("gateway", string(order.Gateway)),
		zap.String("transaction_id", transactionID),
	)
	return nil
}
