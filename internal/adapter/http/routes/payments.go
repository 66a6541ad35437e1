package routes

import (
	"energia_divinidad/internal/adapter/http/handlers"
	"energia_divinidad/internal/adapter/http/middleware"
	"energia_divinidad/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathWebhooks = "/webhooks"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_number", checkoutHandler.GetOrder)
		orders.POST("/:order_number/reconcile", checkoutHandler.ReconcileOrder)
		orders.POST("/:order_number/confirm", checkoutHandler.ConfirmOrder)
		orders.POST("/:order_number/refund", checkoutHandler.RefundOrder)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, limiter *middleware.RateLimiter) {
	webhooks := rg.Group(PathWebhooks)
	if limiter != nil {
		webhooks.Use(limiter.Middleware())
	}
	{
		webhooks.POST("/wompi", webhookHandler.Handle(entities.GatewayWompi))
		webhooks.POST("/paypal", webhookHandler.Handle(entities.GatewayPayPal))
		webhooks.POST("/nequi", webhookHandler.Handle(entities.GatewayNequi))
		// ePayco confirms either by POST form or by GET query string.
		webhooks.POST("/epayco", webhookHandler.Handle(entities.GatewayEpayco))
		webhooks.GET("/epayco", webhookHandler.Handle(entities.GatewayEpayco))
	}
}
