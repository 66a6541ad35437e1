package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port       int
	Env        string
	AppBaseURL string

	AWS AWSConfig

	OrdersTable        string
	WebhookEventsTable string

	KafkaBrokerURL        string
	KafkaFulfillmentTopic string

	WebhookRateLimit     float64
	WebhookRateBurst     int
	WebhookInflightLease time.Duration

	GatewayHTTPTimeout time.Duration

	Wompi  WompiConfig
	PayPal PayPalConfig
	Nequi  NequiConfig
	Epayco EpaycoConfig
}

// AWSConfig is local-friendly: DynamoDB Local does not validate
// credentials, so they default to "local".
type AWSConfig struct {
	Region           string
	DynamoDBEndpoint string
	AccessKeyID      string
	SecretAccessKey  string
}

type WompiConfig struct {
	PublicKey       string
	PrivateKey      string
	IntegritySecret string
	EventsSecret    string
	APIURL          string
	CheckoutURL     string
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	WebhookID    string
	APIURL       string
	BrandName    string
}

type NequiConfig struct {
	ClientID      string
	ClientSecret  string
	APIKey        string
	WebhookSecret string
	APIURL        string
	AuthURL       string
	Channel       string
}

type EpaycoConfig struct {
	CustomerID    string
	PKey          string
	PublicKey     string
	PrivateKey    string
	APIURL        string
	CheckoutURL   string
	ValidationURL string
	Test          bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnvAsInt("PORT", 8080)
	cfg.Env = getEnvOrDefault("APP_ENV", "development")
	cfg.AppBaseURL = strings.TrimRight(getEnvOrDefault("APP_BASE_URL", "http://localhost:8080"), "/")

	cfg.AWS.Region = getEnvOrDefault("AWS_REGION", "us-east-1")
	cfg.AWS.DynamoDBEndpoint = getEnvOrDefault("DYNAMODB_ENDPOINT", "")
	cfg.AWS.AccessKeyID = getEnvOrDefault("AWS_ACCESS_KEY_ID", "local")
	cfg.AWS.SecretAccessKey = getEnvOrDefault("AWS_SECRET_ACCESS_KEY", "local")

	cfg.OrdersTable = getEnvOrDefault("ORDERS_TABLE", "orders")
	cfg.WebhookEventsTable = getEnvOrDefault("WEBHOOK_EVENTS_TABLE", "webhook_events")

	cfg.KafkaBrokerURL = getEnvOrDefault("KAFKA_BROKER_URL", "")
	cfg.KafkaFulfillmentTopic = getEnvOrDefault("KAFKA_FULFILLMENT_TOPIC", "payment.approved")

	cfg.WebhookRateLimit = getEnvAsFloat("WEBHOOK_RATE_LIMIT", 10)
	cfg.WebhookRateBurst = getEnvAsInt("WEBHOOK_RATE_BURST", 20)
	cfg.WebhookInflightLease = getEnvAsDuration("WEBHOOK_INFLIGHT_LEASE", 5*time.Minute)
	cfg.GatewayHTTPTimeout = getEnvAsDuration("GATEWAY_HTTP_TIMEOUT", 15*time.Second)

	cfg.Wompi = WompiConfig{
		PublicKey:       getEnvOrDefault("WOMPI_PUBLIC_KEY", ""),
		PrivateKey:      getEnvOrDefault("WOMPI_PRIVATE_KEY", ""),
		IntegritySecret: getEnvOrDefault("WOMPI_INTEGRITY_SECRET", ""),
		EventsSecret:    getEnvOrDefault("WOMPI_EVENTS_SECRET", ""),
		APIURL:          getEnvOrDefault("WOMPI_API_URL", ""),
		CheckoutURL:     getEnvOrDefault("WOMPI_CHECKOUT_URL", ""),
	}
	cfg.PayPal = PayPalConfig{
		ClientID:     getEnvOrDefault("PAYPAL_CLIENT_ID", ""),
		ClientSecret: getEnvOrDefault("PAYPAL_CLIENT_SECRET", ""),
		WebhookID:    getEnvOrDefault("PAYPAL_WEBHOOK_ID", ""),
		APIURL:       getEnvOrDefault("PAYPAL_API_URL", ""),
		BrandName:    getEnvOrDefault("PAYPAL_BRAND_NAME", "Energía y Divinidad"),
	}
	cfg.Nequi = NequiConfig{
		ClientID:      getEnvOrDefault("NEQUI_CLIENT_ID", ""),
		ClientSecret:  getEnvOrDefault("NEQUI_CLIENT_SECRET", ""),
		APIKey:        getEnvOrDefault("NEQUI_API_KEY", ""),
		WebhookSecret: getEnvOrDefault("NEQUI_WEBHOOK_SECRET", ""),
		APIURL:        getEnvOrDefault("NEQUI_API_URL", ""),
		AuthURL:       getEnvOrDefault("NEQUI_AUTH_URL", ""),
		Channel:       getEnvOrDefault("NEQUI_CHANNEL", "PNP04-C001"),
	}
	cfg.Epayco = EpaycoConfig{
		CustomerID:    getEnvOrDefault("EPAYCO_CUSTOMER_ID", ""),
		PKey:          getEnvOrDefault("EPAYCO_P_KEY", ""),
		PublicKey:     getEnvOrDefault("EPAYCO_PUBLIC_KEY", ""),
		PrivateKey:    getEnvOrDefault("EPAYCO_PRIVATE_KEY", ""),
		APIURL:        getEnvOrDefault("EPAYCO_API_URL", ""),
		CheckoutURL:   getEnvOrDefault("EPAYCO_CHECKOUT_URL", ""),
		ValidationURL: getEnvOrDefault("EPAYCO_VALIDATION_URL", ""),
		Test:          getEnvAsBool("EPAYCO_TEST", false),
	}

	return cfg, nil
}

func (c *Config) GetKafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokerURL, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvOrDefault(key, strconv.Itoa(defaultValue))
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnvOrDefault(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnvOrDefault(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
