package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"energia_divinidad/internal/config"
	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	wompiProductionAPIURL = "https://production.wompi.co/v1"
	wompiSandboxAPIURL    = "https://sandbox.wompi.co/v1"
	wompiCheckoutURL      = "https://checkout.wompi.co/p/"
)

var wompiDefaultSignatureProperties = []string{"transaction.id", "transaction.status", "transaction.amount_in_cents"}

var _ interfaces.IPaymentGateway = (*WompiGateway)(nil)

// WompiGateway redirects to the Wompi Web Checkout. The checkout URL is
// built locally and signed with the integrity secret, so CreatePayment does
// not call the Wompi API.
type WompiGateway struct {
	baseGateway
	cfg config.WompiConfig
	api apiClient
}

func NewWompiGateway(cfg config.WompiConfig, httpClient *http.Client, logger *zap.Logger) *WompiGateway {
	if cfg.APIURL == "" {
		cfg.APIURL = wompiProductionAPIURL
		if strings.HasPrefix(cfg.PublicKey, "pub_test_") {
			cfg.APIURL = wompiSandboxAPIURL
		}
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.CheckoutURL == "" {
		cfg.CheckoutURL = wompiCheckoutURL
	}
	return &WompiGateway{
		baseGateway: newBaseGateway(
			entities.GatewayWompi,
			[]entities.Currency{entities.CurrencyCOP},
			[]entities.PaymentMethodType{entities.PaymentMethodCard, entities.PaymentMethodPSE, entities.PaymentMethodNequi, entities.PaymentMethodBankTransfer},
			logger,
		),
		cfg: cfg,
		api: newAPIClient(httpClient),
	}
}

func (g *WompiGateway) IsConfigured() bool {
	return g.cfg.PublicKey != "" && g.cfg.IntegritySecret != "" && g.cfg.EventsSecret != ""
}

func (g *WompiGateway) CreatePayment(_ context.Context, p entities.CreatePaymentParams) (entities.CreatePaymentResult, error) {
	if err := g.validateParams(g.IsConfigured(), p); err != nil {
		return entities.CreatePaymentResult{}, err
	}

	cents := toCents(p.Amount)
	u, err := url.Parse(g.cfg.CheckoutURL)
	if err != nil {
		g.logger.Error("invalid checkout url", zap.String("checkout_url", g.cfg.CheckoutURL), zap.Error(err))
		return paymentFailure("CHECKOUT_URL_INVALID", "invalid Wompi checkout URL"), nil
	}

	q := u.Query()
	q.Set("public-key", g.cfg.PublicKey)
	q.Set("currency", string(p.Currency))
	q.Set("amount-in-cents", strconv.FormatInt(cents, 10))
	q.Set("reference", p.OrderNumber)
	q.Set("signature:integrity", wompiIntegritySignature(p.OrderNumber, cents, p.Currency, g.cfg.IntegritySecret))
	if p.RedirectURL != "" {
		q.Set("redirect-url", p.RedirectURL)
	}
	if p.Customer.Email != "" {
		q.Set("customer-data:email", p.Customer.Email)
	}
	if p.Customer.FullName != "" {
		q.Set("customer-data:full-name", p.Customer.FullName)
	}
	if p.Customer.Phone != "" {
		q.Set("customer-data:phone-number", p.Customer.Phone)
	}
	u.RawQuery = q.Encode()

	g.logger.Info("checkout url created",
		zap.String("reference", p.OrderNumber),
		zap.Int64("amount_in_cents", cents),
		zap.String("method", string(p.PaymentMethod)),
	)
	return entities.CreatePaymentResult{
		Success:     true,
		RedirectURL: u.String(),
		Status:      entities.TransactionStatusPending,
	}, nil
}

type wompiEvent struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp json.Number     `json:"timestamp"`
	Signature struct {
		Properties []string `json:"properties"`
		Checksum   string   `json:"checksum"`
	} `json:"signature"`
}

type wompiTransaction struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	StatusMessage     string `json:"status_message"`
	Reference         string `json:"reference"`
	AmountInCents     int64  `json:"amount_in_cents"`
	Currency          string `json:"currency"`
	PaymentMethodType string `json:"payment_method_type"`
}

// VerifyWebhook checks the event checksum: sha256 over the values named in
// signature.properties (looked up under data), then the timestamp, then the
// events secret. Header values take precedence over the body ones.
func (g *WompiGateway) VerifyWebhook(_ context.Context, req entities.WebhookRequest) entities.WebhookVerificationResult {
	if g.cfg.EventsSecret == "" {
		return invalidWebhook("wompi events secret not configured")
	}

	var event wompiEvent
	if err := json.Unmarshal(req.Body, &event); err != nil {
		return invalidWebhook("invalid payload")
	}
	var data map[string]interface{}
	if len(event.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(event.Data))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return invalidWebhook("invalid payload")
		}
	}

	checksum := firstNonEmpty(req.Headers.Get("X-Event-Checksum"), event.Signature.Checksum)
	timestamp := firstNonEmpty(req.Headers.Get("X-Event-Timestamp"), event.Timestamp.String())
	if checksum == "" || timestamp == "" {
		return invalidWebhook("missing signature")
	}

	properties := event.Signature.Properties
	if len(properties) == 0 {
		properties = wompiDefaultSignatureProperties
	}
	var sb strings.Builder
	for _, prop := range properties {
		sb.WriteString(lookupProperty(data, prop))
	}
	sb.WriteString(timestamp)
	sb.WriteString(g.cfg.EventsSecret)

	expected := sha256Hex(sb.String())
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(checksum))) {
		g.logger.Warn("invalid webhook signature", zap.String("event", event.Event))
		return invalidWebhook("invalid signature")
	}

	var payload struct {
		Transaction wompiTransaction `json:"transaction"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return invalidWebhook("invalid payload")
	}
	tx := payload.Transaction
	return entities.WebhookVerificationResult{
		Valid:         true,
		EventType:     event.Event,
		TransactionID: tx.ID,
		Status:        wompiStatus(tx.Status),
		NativeStatus:  tx.Status,
		Reference:     tx.Reference,
		Amount:        fromCents(tx.AmountInCents),
		Currency:      entities.Currency(strings.ToUpper(tx.Currency)),
		RawPayload:    req.Body,
	}
}

func (g *WompiGateway) GetTransactionStatus(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error) {
	key := firstNonEmpty(g.cfg.PrivateKey, g.cfg.PublicKey)
	if key == "" {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, g.name)
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: transaction id is required", ErrInvalidPaymentParams)
	}

	var out struct {
		Data wompiTransaction `json:"data"`
	}
	endpoint := g.cfg.APIURL + "/transactions/" + url.PathEscape(transactionID)
	if err := g.api.doJSON(ctx, http.MethodGet, endpoint, map[string]string{"Authorization": "Bearer " + key}, nil, &out); err != nil {
		g.logger.Error("transaction lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return entities.TransactionStatusResult{}, fmt.Errorf("wompi transaction lookup failed: %w", err)
	}

	tx := out.Data
	return entities.TransactionStatusResult{
		TransactionID: firstNonEmpty(tx.ID, transactionID),
		Status:        wompiStatus(tx.Status),
		NativeStatus:  tx.Status,
		Reference:     tx.Reference,
		Amount:        fromCents(tx.AmountInCents),
		Currency:      entities.Currency(strings.ToUpper(tx.Currency)),
	}, nil
}

// wompiIntegritySignature is sha256(reference + amountInCents + currency + integritySecret).
func wompiIntegritySignature(reference string, cents int64, currency entities.Currency, secret string) string {
	return sha256Hex(reference + strconv.FormatInt(cents, 10) + string(currency) + secret)
}

func wompiStatus(native string) entities.TransactionStatus {
	switch strings.ToUpper(strings.TrimSpace(native)) {
	case "APPROVED":
		return entities.TransactionStatusApproved
	case "DECLINED":
		return entities.TransactionStatusDeclined
	case "VOIDED":
		return entities.TransactionStatusVoided
	case "ERROR":
		return entities.TransactionStatusError
	default:
		return entities.TransactionStatusPending
	}
}

// lookupProperty resolves a dotted path such as "transaction.amount_in_cents".
func lookupProperty(data map[string]interface{}, path string) string {
	var cur interface{} = data
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return ""
		}
		cur = m[part]
	}
	switch v := cur.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
