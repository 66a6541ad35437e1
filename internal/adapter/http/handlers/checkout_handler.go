package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	request "energia_divinidad/internal/adapter/http/dto/request"
	response "energia_divinidad/internal/adapter/http/dto/response"
	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase"
	"energia_divinidad/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errInvalidRefundPayload   = pkg.NewDomainErrorSimple("INVALID_REFUND_INPUT", "Invalid refund payload", http.StatusBadRequest)
)

// CheckoutHandler handles order creation and the synchronous payment operations.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary      Create an order and start its payment
// @Description  Creates a PENDING order, picks a gateway and returns the hosted checkout URL (or a Nequi push acknowledgement).
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "Checkout payload"
// @Success      201      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := mapCheckoutError(usecase.ErrInvalidAmount)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateCheckout(c.Request.Context(), usecase.CheckoutInput{
		Amount:        amount,
		Currency:      payload.ResolveCurrency(),
		PaymentMethod: payload.ResolvePaymentMethod(),
		Gateway:       payload.ResolveGateway(),
		UserID:        payload.UserID,
		Customer:      payload.ResolveCustomer(),
		Description:   payload.Description,
		RedirectURL:   payload.RedirectURL,
		CancelURL:     payload.CancelURL,
		Metadata:      payload.Metadata,
	})
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// GetOrder godoc
// @Summary      Get an order by its order number
// @Tags         orders
// @Produce      json
// @Param        order_number  path      string  true  "Order number"
// @Success      200           {object}  response.OrderResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /orders/{order_number} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	h.orderOperation(c, h.usecase.GetOrder)
}

// ReconcileOrder polls the gateway and applies the transaction status.
func (h *CheckoutHandler) ReconcileOrder(c *gin.Context) {
	h.orderOperation(c, h.usecase.ReconcileOrder)
}

// ConfirmOrder is called when the buyer returns from the hosted page. The
// provider's transaction id is forwarded from the return URL: Wompi sends
// `id`, ePayco `ref_payco` and PayPal `token`.
//
// @Summary      Confirm an order after the buyer returns
// @Tags         orders
// @Produce      json
// @Param        order_number    path      string  true   "Order number"
// @Param        transaction_id  query     string  false  "Provider transaction id"
// @Param        id              query     string  false  "Wompi transaction id"
// @Param        ref_payco       query     string  false  "ePayco reference"
// @Param        token           query     string  false  "PayPal order id"
// @Success      200             {object}  response.OrderResponse
// @Failure      404             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Router       /orders/{order_number}/confirm [post]
func (h *CheckoutHandler) ConfirmOrder(c *gin.Context) {
	txID := firstQuery(c, "transaction_id", "id", "ref_payco", "token")
	order, err := h.usecase.ConfirmReturn(c.Request.Context(), c.Param("order_number"), txID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *CheckoutHandler) RefundOrder(c *gin.Context) {
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidRefundPayload.HTTPStatus, errInvalidRefundPayload.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidRefundPayload.HTTPStatus, errInvalidRefundPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.RefundOrder(c.Request.Context(), c.Param("order_number"), usecase.RefundInput{
		Amount: amount,
		Reason: payload.Reason,
	})
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *CheckoutHandler) orderOperation(
	c *gin.Context,
	op func(ctx context.Context, orderNumber string) (entities.Order, error),
) {
	order, err := op(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

func (h *CheckoutHandler) abort(c *gin.Context, err error) {
	_ = c.Error(err)
	appErr := mapCheckoutError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CURRENCY", "Unsupported currency", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Customer email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownGateway):
		return pkg.NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown payment gateway", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainError("PAYMENT_REJECTED", "The selected gateway cannot process this payment", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentCreationFailed):
		return pkg.NewDomainError("PAYMENT_CREATION_FAILED", "Could not start the payment, please try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Order has no gateway transaction yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionMismatch):
		return pkg.NewDomainError("TRANSACTION_MISMATCH", "Transaction does not belong to this order", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundNotSupported):
		return pkg.NewDomainError("REFUND_NOT_SUPPORTED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotRefundable):
		return pkg.NewDomainError("ORDER_NOT_REFUNDABLE", "Only completed orders can be refunded", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundFailed):
		return pkg.NewDomainError("REFUND_FAILED", "Refund was rejected by the gateway", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
