package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "energia_divinidad/docs" // This will be auto-generated
	"energia_divinidad/internal/adapter/http/handlers"
	"energia_divinidad/internal/adapter/http/middleware"
	"energia_divinidad/internal/adapter/persistence/repository"
	"energia_divinidad/internal/config"
	"energia_divinidad/internal/infrastructure/database"
	"energia_divinidad/internal/infrastructure/messaging"
	"energia_divinidad/internal/infrastructure/payments"
	"energia_divinidad/internal/usecase"
	"energia_divinidad/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Checkout       *handlers.CheckoutHandler
	Webhook        *handlers.WebhookHandler
	WebhookLimiter *middleware.RateLimiter
}

// Run wires the service and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	h, cleanup, err := getHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, logger)

	done := make(chan struct{})
	defer close(done)
	h.WebhookLimiter.StartCleanup(time.Minute, done)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every public route.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h.Checkout)
	addWebhookRoutes(v1, h.Webhook, h.WebhookLimiter)

	return router
}

func getHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, nil, err
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	eventRepo := repository.NewWebhookEventDynamoRepository(ddb, cfg.WebhookEventsTable)

	registry, err := payments.NewRegistryFromConfig(cfg, logger)
	if err != nil {
		return Handlers{}, nil, err
	}
	configured := registry.Configured()
	if len(configured) == 0 {
		logger.Warn("no payment gateway configured, checkout will be unavailable")
	} else {
		logger.Info("payment gateways configured", zap.Any("gateways", configured))
	}

	cleanup := func() {}
	var fulfillment interfaces.IOrderFulfillment
	if brokers := cfg.GetKafkaBrokers(); len(brokers) > 0 {
		publisher := messaging.NewKafkaFulfillmentPublisher(brokers, cfg.KafkaFulfillmentTopic, logger)
		fulfillment = publisher
		cleanup = func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("failed to close kafka writer", zap.Error(err))
			}
		}
	} else {
		logger.Warn("KAFKA_BROKER_URL not set, approved payments will only be logged")
		fulfillment = messaging.NewLogFulfillment(logger)
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(registry, orderRepo, cfg.AppBaseURL, logger)
	webhookUseCase := usecase.NewWebhookUseCase(registry, orderRepo, eventRepo, fulfillment, cfg.WebhookInflightLease, logger)

	return Handlers{
		Checkout:       handlers.NewCheckoutHandler(checkoutUseCase),
		Webhook:        handlers.NewWebhookHandler(webhookUseCase),
		WebhookLimiter: middleware.NewRateLimiter(cfg.WebhookRateLimit, cfg.WebhookRateBurst, 10*time.Minute),
	}, cleanup, nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
}
