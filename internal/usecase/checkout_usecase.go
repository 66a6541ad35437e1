package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidCurrency       = errors.New("unsupported currency")
	ErrInvalidPaymentMethod  = errors.New("unsupported payment method")
	ErrInvalidCustomer       = errors.New("customer email is required")
	ErrOrderNotFound         = errors.New("order not found")
	ErrGatewayUnavailable    = errors.New("payment gateway not available")
	ErrPaymentRejected       = errors.New("payment parameters rejected by gateway")
	ErrPaymentCreationFailed = errors.New("payment creation failed")
	ErrTransactionNotFound   = errors.New("order has no gateway transaction")
	ErrTransactionMismatch   = errors.New("transaction belongs to another order")
	ErrRefundNotSupported    = errors.New("Refunds not supported")
	ErrOrderNotRefundable    = errors.New("only completed orders can be refunded")
	ErrRefundFailed          = errors.New("refund failed")
)

// CheckoutInput is a purchase request. Gateway is an optional explicit
// override; when empty the selector decides.
type CheckoutInput struct {
	Amount        decimal.Decimal
	Currency      entities.Currency
	PaymentMethod entities.PaymentMethodType
	Gateway       entities.GatewayName
	UserID        string
	Customer      entities.CustomerInfo
	Description   string
	RedirectURL   string
	CancelURL     string
	Metadata      map[string]interface{}
}

type CheckoutResult struct {
	Order                entities.Order
	RedirectURL          string
	TransactionID        string
	ProcessedImmediately bool
}

// RefundInput with a zero Amount refunds the whole order.
type RefundInput struct {
	Amount decimal.Decimal
	Reason string
}

// ICheckoutUseCase exposes the synchronous side of the payment flow:
//   - POST /v1/checkout => CreateCheckout()
//   - GET /v1/orders/{order_number} => GetOrder()
//   - POST /v1/orders/{order_number}/reconcile => ReconcileOrder()
//   - POST /v1/orders/{order_number}/confirm => ConfirmReturn()
//   - POST /v1/orders/{order_number}/refund => RefundOrder()

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	GetOrder(ctx context.Context, orderNumber string) (entities.Order, error)
	ReconcileOrder(ctx context.Context, orderNumber string) (entities.Order, error)
	ConfirmReturn(ctx context.Context, orderNumber, returnedTransactionID string) (entities.Order, error)
	RefundOrder(ctx context.Context, orderNumber string, in RefundInput) (entities.Order, error)
}

type CheckoutUseCase struct {
	selector   interfaces.IGatewaySelector
	orders     interfaces.IOrderRepository
	appBaseURL string
	logger     *zap.Logger
	now        func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(selector interfaces.IGatewaySelector, orders interfaces.IOrderRepository, appBaseURL string, logger *zap.Logger) *CheckoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUseCase{
		selector:   selector,
		orders:     orders,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		logger:     logger.With(zap.String("component", "checkout")),
		now:        time.Now,
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if !in.Amount.IsPositive() {
		return CheckoutResult{}, ErrInvalidAmount
	}
	if !in.Currency.Valid() {
		return CheckoutResult{}, fmt.Errorf("%w: %s", ErrInvalidCurrency, in.Currency)
	}
	if !in.PaymentMethod.Valid() {
		return CheckoutResult{}, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, in.PaymentMethod)
	}
	in.Customer.Email = strings.TrimSpace(in.Customer.Email)
	if in.Customer.Email == "" {
		return CheckoutResult{}, ErrInvalidCustomer
	}

	gw, err := u.resolveGateway(in)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !gw.IsConfigured() {
		return CheckoutResult{}, fmt.Errorf("%w: %s", ErrGatewayUnavailable, gw.Name().Label())
	}
	log := u.logger.With(zap.String("gateway", string(gw.Name())))

	now := u.now().UTC()
	order := entities.Order{
		ID:            uuid.NewString(),
		OrderNumber:   newOrderNumber(now),
		UserID:        in.UserID,
		CustomerEmail: in.Customer.Email,
		CustomerName:  in.Customer.FullName,
		CustomerPhone: in.Customer.Phone,
		Description:   in.Description,
		PaymentStatus: entities.PaymentStatusPending,
		Amount:        in.Amount,
		Currency:      in.Currency,
		PaymentMethod: in.PaymentMethod,
		Gateway:       gw.Name(),
		Metadata:      copyMetadata(in.Metadata),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order, err = u.orders.Create(ctx, order)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("create order: %w", err)
	}
	log = log.With(zap.String("order_number", order.OrderNumber))

	description := in.Description
	if description == "" {
		description = "Pedido " + order.OrderNumber
	}
	redirectURL := in.RedirectURL
	if redirectURL == "" {
		redirectURL = u.appBaseURL + "/pago/resultado?order=" + url.QueryEscape(order.OrderNumber)
	}
	cancelURL := in.CancelURL
	if cancelURL == "" {
		cancelURL = redirectURL
	}

	pr, err := gw.CreatePayment(ctx, entities.CreatePaymentParams{
		Amount:        order.Amount,
		Currency:      order.Currency,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Description:   description,
		Customer:      in.Customer,
		PaymentMethod: order.PaymentMethod,
		RedirectURL:   redirectURL,
		CancelURL:     cancelURL,
		WebhookURL:    u.appBaseURL + "/v1/webhooks/" + string(gw.Name()),
	})
	if err != nil {
		return CheckoutResult{Order: order}, fmt.Errorf("%w: %w", ErrPaymentRejected, err)
	}
	if !pr.Success {
		log.Warn("payment creation failed", zap.String("error_code", pr.ErrorCode), zap.String("error", pr.Error))
		return CheckoutResult{Order: order}, fmt.Errorf("%w: %s", ErrPaymentCreationFailed, pr.Error)
	}

	status := order.PaymentStatus
	if pr.ProcessedImmediately {
		status = entities.PaymentStatusProcessing
	}
	metadata := mergeGatewayMetadata(order.Metadata, gatewayUpdate{
		gateway:       gw.Name(),
		transactionID: pr.TransactionID,
		status:        pr.Status,
	}, now)
	updated, err := u.orders.UpdatePayment(ctx, order.OrderNumber, status, metadata)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("update order %s: %w", order.OrderNumber, err)
	}
	updated = orDefault(updated, order, status, metadata)

	log.Info("checkout created", zap.String("transaction_id", pr.TransactionID), zap.Bool("processed_immediately", pr.ProcessedImmediately))
	return CheckoutResult{
		Order:                updated,
		RedirectURL:          pr.RedirectURL,
		TransactionID:        pr.TransactionID,
		ProcessedImmediately: pr.ProcessedImmediately,
	}, nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderNumber string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OrderNumber == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ReconcileOrder polls the gateway for the stored transaction and applies the
// same forward-only rules as webhooks. It never triggers fulfillment.
func (u *CheckoutUseCase) ReconcileOrder(ctx context.Context, orderNumber string) (entities.Order, error) {
	order, gw, err := u.orderWithGateway(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	return u.reconcile(ctx, order, gw)
}

// ConfirmReturn runs when the buyer comes back from the hosted page. Gateways
// that need an explicit capture (PayPal) are captured here.
//
// Wompi and ePayco only reveal their transaction id on the return URL, so
// returnedTransactionID is used when the order has none stored yet. Such an id
// is accepted only if the gateway reports it for this order's reference.
func (u *CheckoutUseCase) ConfirmReturn(ctx context.Context, orderNumber, returnedTransactionID string) (entities.Order, error) {
	order, gw, err := u.orderWithGateway(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if order.PaymentStatus == entities.PaymentStatusCompleted {
		return order, nil
	}

	txID := order.TransactionID()
	if txID == "" {
		txID = strings.TrimSpace(returnedTransactionID)
		if txID == "" {
			return entities.Order{}, ErrTransactionNotFound
		}
		st, err := u.lookupReturnedTransaction(ctx, order, gw, txID)
		if err != nil {
			return entities.Order{}, err
		}
		if _, ok := gw.(interfaces.ICapturableGateway); !ok {
			return u.applyStatus(ctx, order, gw.Name(), st)
		}
	}

	cg, ok := gw.(interfaces.ICapturableGateway)
	if !ok {
		return u.reconcile(ctx, order, gw)
	}
	st, err := cg.CaptureOrder(ctx, txID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("capture %s order %s: %w", gw.Name().Label(), txID, err)
	}
	return u.applyStatus(ctx, order, gw.Name(), st)
}

func (u *CheckoutUseCase) lookupReturnedTransaction(ctx context.Context, order entities.Order, gw interfaces.IPaymentGateway, txID string) (entities.TransactionStatusResult, error) {
	st, err := gw.GetTransactionStatus(ctx, txID)
	if err != nil {
		return entities.TransactionStatusResult{}, fmt.Errorf("get %s transaction %s: %w", gw.Name().Label(), txID, err)
	}
	if st.Reference != order.OrderNumber {
		u.logger.Warn("returned transaction does not match order",
			zap.String("gateway", string(gw.Name())),
			zap.String("order_number", order.OrderNumber),
			zap.String("transaction_id", txID),
			zap.String("transaction_reference", st.Reference))
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: %s", ErrTransactionMismatch, txID)
	}
	if st.TransactionID == "" {
		st.TransactionID = txID
	}
	return st, nil
}

func (u *CheckoutUseCase) RefundOrder(ctx context.Context, orderNumber string, in RefundInput) (entities.Order, error) {
	order, gw, err := u.orderWithGateway(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	rg, ok := gw.(interfaces.IRefundableGateway)
	if !ok {
		return entities.Order{}, fmt.Errorf("%w by %s", ErrRefundNotSupported, gw.Name().Label())
	}
	if order.PaymentStatus != entities.PaymentStatusCompleted {
		return entities.Order{}, fmt.Errorf("%w: order is %s", ErrOrderNotRefundable, order.PaymentStatus)
	}
	if in.Amount.IsNegative() || in.Amount.GreaterThan(order.Amount) {
		return entities.Order{}, ErrInvalidAmount
	}

	captureID := order.MetadataString(entities.MetadataKey(order.Gateway, entities.MetadataCaptureID))
	if captureID == "" {
		captureID = order.TransactionID()
	}
	if captureID == "" {
		return entities.Order{}, ErrTransactionNotFound
	}

	full := in.Amount.IsZero() || in.Amount.Equal(order.Amount)
	rr, err := rg.Refund(ctx, entities.RefundParams{
		TransactionID: captureID,
		Amount:        in.Amount,
		Currency:      order.Currency,
		Reason:        in.Reason,
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("refund order %s: %w", order.OrderNumber, err)
	}
	if !rr.Success {
		return entities.Order{}, fmt.Errorf("%w: %s", ErrRefundFailed, rr.Error)
	}

	metadata := copyMetadata(order.Metadata)
	metadata[entities.MetadataKey(order.Gateway, entities.MetadataRefundID)] = rr.RefundID
	metadata[entities.MetadataKey(order.Gateway, entities.MetadataRefundStatus)] = rr.NativeStatus
	metadata[entities.MetadataKey(order.Gateway, entities.MetadataUpdatedAt)] = u.now().UTC().Format(time.RFC3339)

	status := order.PaymentStatus
	if full {
		status = entities.PaymentStatusRefunded
	}
	updated, err := u.orders.UpdatePayment(ctx, order.OrderNumber, status, metadata)
	if err != nil {
		return entities.Order{}, fmt.Errorf("update order %s: %w", order.OrderNumber, err)
	}
	u.logger.Info("order refunded",
		zap.String("gateway", string(order.Gateway)),
		zap.String("order_number", order.OrderNumber),
		zap.String("refund_id", rr.RefundID),
		zap.Bool("full", full))
	return orDefault(updated, order, status, metadata), nil
}

func (u *CheckoutUseCase) resolveGateway(in CheckoutInput) (interfaces.IPaymentGateway, error) {
	if in.Gateway != "" {
		gw, ok := u.selector.Get(in.Gateway)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGateway, in.Gateway)
		}
		return gw, nil
	}
	return u.selector.GetGatewayForPayment(in.PaymentMethod, in.Currency), nil
}

func (u *CheckoutUseCase) orderWithGateway(ctx context.Context, orderNumber string) (entities.Order, interfaces.IPaymentGateway, error) {
	order, err := u.GetOrder(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, nil, err
	}
	gw, ok := u.selector.Get(order.Gateway)
	if !ok {
		return entities.Order{}, nil, fmt.Errorf("%w: %s", ErrUnknownGateway, order.Gateway)
	}
	return order, gw, nil
}

func (u *CheckoutUseCase) reconcile(ctx context.Context, order entities.Order, gw interfaces.IPaymentGateway) (entities.Order, error) {
	txID := order.TransactionID()
	if txID == "" {
		return entities.Order{}, ErrTransactionNotFound
	}
	st, err := gw.GetTransactionStatus(ctx, txID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("get %s transaction %s: %w", gw.Name().Label(), txID, err)
	}
	return u.applyStatus(ctx, order, gw.Name(), st)
}

func (u *CheckoutUseCase) applyStatus(ctx context.Context, order entities.Order, g entities.GatewayName, st entities.TransactionStatusResult) (entities.Order, error) {
	status, advanced := nextPaymentStatus(order.PaymentStatus, st.Status)
	if !advanced {
		u.logger.Info("stale status ignored",
			zap.String("gateway", string(g)),
			zap.String("order_number", order.OrderNumber),
			zap.String("current", string(order.PaymentStatus)),
			zap.String("incoming", string(st.Status)))
	}
	metadata := mergeGatewayMetadata(order.Metadata, gatewayUpdate{
		gateway:       g,
		transactionID: st.TransactionID,
		status:        st.Status,
		captureID:     st.CaptureID,
	}, u.now())

	updated, err := u.orders.UpdatePayment(ctx, order.OrderNumber, status, metadata)
	if err != nil {
		return entities.Order{}, fmt.Errorf("update order %s: %w", order.OrderNumber, err)
	}
	return orDefault(updated, order, status, metadata), nil
}

// orDefault covers a repository that returned no attributes for the update.
func orDefault(updated, order entities.Order, status entities.PaymentStatus, metadata map[string]interface{}) entities.Order {
	if updated.OrderNumber != "" {
		return updated
	}
	order.PaymentStatus = status
	order.Metadata = metadata
	return order
}

// newOrderNumber returns ED-YYYYMMDD-XXXXXXXX.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ED-" + now.UTC().Format("20060102") + "-" + suffix
}
