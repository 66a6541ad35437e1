package handlers

import (
	"errors"
	"io"
	"net/http"

	response "energia_divinidad/internal/adapter/http/dto/response"
	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase"
	"energia_divinidad/pkg"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

var (
	errWebhookBody    = pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Could not read webhook body", http.StatusBadRequest)
	errUnknownGateway = pkg.NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown payment gateway", http.StatusNotFound)
)

// WebhookHandler receives provider notifications.
//
// Status codes are what providers act on:
//   - 200: accepted (including duplicates and unknown orders), do not resend
//   - 401: signature or payload rejected
//   - 500: retryable, the provider should redeliver

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Handle returns the endpoint for one gateway. ePayco may confirm with a GET,
// in which case the query string is the signed payload.
//
// @Summary      Payment provider webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        gateway  path      string  true  "wompi | paypal | nequi | epayco"
// @Success      200      {object}  response.WebhookAck
// @Failure      401      {object}  response.WebhookAck
// @Failure      500      {object}  response.WebhookAck
// @Router       /webhooks/{gateway} [post]
func (h *WebhookHandler) Handle(gateway entities.GatewayName) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Method == http.MethodGet {
			body = []byte(c.Request.URL.RawQuery)
		} else {
			b, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
			if err != nil {
				c.JSON(errWebhookBody.HTTPStatus, errWebhookBody.ToHTTPError())
				return
			}
			body = b
		}

		res, err := h.usecase.ProcessPaymentWebhook(c.Request.Context(), gateway, entities.WebhookRequest{
			Headers: c.Request.Header.Clone(),
			Body:    body,
		})
		if err != nil {
			_ = c.Error(err)
			if errors.Is(err, usecase.ErrUnknownGateway) {
				c.JSON(errUnknownGateway.HTTPStatus, errUnknownGateway.ToHTTPError())
				return
			}
			c.JSON(http.StatusInternalServerError, response.WebhookAck{Received: false, Message: "internal error"})
			return
		}

		switch {
		case res.Retryable:
			c.JSON(http.StatusInternalServerError, response.FromWebhookResult(res))
		case !res.Success:
			c.JSON(http.StatusUnauthorized, response.FromWebhookResult(res))
		default:
			c.JSON(http.StatusOK, response.FromWebhookResult(res))
		}
	}
}
