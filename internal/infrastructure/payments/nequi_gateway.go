package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"energia_divinidad/internal/config"
	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	nequiProductionAPIURL = "https://api.nequi.com/payments/v2"
	nequiAuthURL          = "https://oauth.nequi.com/oauth2/token"

	nequiUnregisteredPaymentPath = "/-services-paymentservice-unregisteredpayment"
	nequiStatusPaymentPath       = "/-services-paymentservice-getstatuspayment"

	nequiStatusCodeSuccess = "0"
	nequiCommerceCode      = "NIT_1"
)

var _ interfaces.IPaymentGateway = (*NequiGateway)(nil)

// NequiGateway sends a push notification to the customer's Nequi app.
// There is no redirect: CreatePayment succeeds with ProcessedImmediately and
// the outcome arrives later through the webhook or a status poll.
type NequiGateway struct {
	baseGateway
	cfg   config.NequiConfig
	api   apiClient
	token tokenCache
	now   func() time.Time
}

func NewNequiGateway(cfg config.NequiConfig, httpClient *http.Client, logger *zap.Logger) *NequiGateway {
	if cfg.APIURL == "" {
		cfg.APIURL = nequiProductionAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.AuthURL == "" {
		cfg.AuthURL = nequiAuthURL
	}
	if cfg.Channel == "" {
		cfg.Channel = "PNP04-C001"
	}
	return &NequiGateway{
		baseGateway: newBaseGateway(
			entities.GatewayNequi,
			[]entities.Currency{entities.CurrencyCOP},
			[]entities.PaymentMethodType{entities.PaymentMethodNequi},
			logger,
		),
		cfg: cfg,
		api: newAPIClient(httpClient),
		now: time.Now,
	}
}

func (g *NequiGateway) IsConfigured() bool {
	return g.cfg.ClientID != "" && g.cfg.ClientSecret != "" && g.cfg.APIKey != "" && g.cfg.WebhookSecret != ""
}

type nequiDestination struct {
	ServiceName      string `json:"ServiceName"`
	ServiceOperation string `json:"ServiceOperation"`
	ServiceRegion    string `json:"ServiceRegion"`
	ServiceVersion   string `json:"ServiceVersion"`
}

type nequiRequestHeader struct {
	Channel     string           `json:"Channel"`
	RequestDate string           `json:"RequestDate"`
	MessageID   string           `json:"MessageID"`
	ClientID    string           `json:"ClientID"`
	Destination nequiDestination `json:"Destination"`
}

type nequiRequest struct {
	RequestMessage struct {
		RequestHeader nequiRequestHeader `json:"RequestHeader"`
		RequestBody   struct {
			Any interface{} `json:"any"`
		} `json:"RequestBody"`
	} `json:"RequestMessage"`
}

type nequiResponse struct {
	ResponseMessage struct {
		ResponseHeader struct {
			Status struct {
				StatusCode string `json:"StatusCode"`
				StatusDesc string `json:"StatusDesc"`
			} `json:"Status"`
		} `json:"ResponseHeader"`
		ResponseBody struct {
			Any json.RawMessage `json:"any"`
		} `json:"ResponseBody"`
	} `json:"ResponseMessage"`
}

func (r nequiResponse) status() (code, desc string) {
	s := r.ResponseMessage.ResponseHeader.Status
	return strings.TrimSpace(s.StatusCode), s.StatusDesc
}

type nequiUnregisteredPaymentRQ struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
	Value       string `json:"value"`
	Reference1  string `json:"reference1"`
	Reference2  string `json:"reference2"`
	Reference3  string `json:"reference3"`
}

func (g *NequiGateway) newRequest(serviceName, operation string, body interface{}) nequiRequest {
	var req nequiRequest
	req.RequestMessage.RequestHeader = nequiRequestHeader{
		Channel:     g.cfg.Channel,
		RequestDate: g.now().UTC().Format(time.RFC3339),
		MessageID:   strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		ClientID:    g.cfg.ClientID,
		Destination: nequiDestination{
			ServiceName:      serviceName,
			ServiceOperation: operation,
			ServiceRegion:    "C001",
			ServiceVersion:   "1.2.0",
		},
	}
	req.RequestMessage.RequestBody.Any = body
	return req
}

func (g *NequiGateway) CreatePayment(ctx context.Context, p entities.CreatePaymentParams) (entities.CreatePaymentResult, error) {
	if err := g.validateParams(g.IsConfigured(), p); err != nil {
		return entities.CreatePaymentResult{}, err
	}
	phone := normalizeColombianPhone(p.Customer.Phone)
	if len(phone) != 10 {
		return entities.CreatePaymentResult{}, fmt.Errorf("%w: a 10 digit Nequi phone number is required", ErrInvalidPaymentParams)
	}

	headers, err := g.authHeaders(ctx)
	if err != nil {
		g.logger.Error("access token request failed", zap.Error(err))
		return paymentFailure("AUTHENTICATION_FAILURE", "could not authenticate with Nequi"), nil
	}

	body := g.newRequest("PaymentsService", "unregisteredPayment", map[string]interface{}{
		"unregisteredPaymentRQ": nequiUnregisteredPaymentRQ{
			PhoneNumber: phone,
			Code:        nequiCommerceCode,
			Value:       formatAmount(p.Amount, p.Currency),
			Reference1:  p.OrderNumber,
			Reference2:  p.OrderID,
			Reference3:  truncate(p.Description, 30),
		},
	})

	var out nequiResponse
	if err := g.api.doJSON(ctx, http.MethodPost, g.cfg.APIURL+nequiUnregisteredPaymentPath, headers, body, &out); err != nil {
		g.token.dropIfUnauthorized(err)
		g.logger.Error("push payment request failed", zap.String("reference", p.OrderNumber), zap.Error(err))
		return paymentFailure("NETWORK_ERROR", "could not reach Nequi"), nil
	}

	code, desc := out.status()
	if code != nequiStatusCodeSuccess {
		g.logger.Warn("push payment rejected", zap.String("reference", p.OrderNumber), zap.String("status_code", code), zap.String("status_desc", desc))
		return paymentFailure(code, firstNonEmpty(desc, "Nequi rejected the payment")), nil
	}

	var rs struct {
		UnregisteredPaymentRS struct {
			TransactionID string `json:"transactionId"`
		} `json:"unregisteredPaymentRS"`
	}
	if len(out.ResponseMessage.ResponseBody.Any) > 0 {
		if err := json.Unmarshal(out.ResponseMessage.ResponseBody.Any, &rs); err != nil {
			g.logger.Error("unexpected push payment response", zap.Error(err))
			return paymentFailure("INVALID_RESPONSE", "unexpected Nequi response"), nil
		}
	}

	txID := rs.UnregisteredPaymentRS.TransactionID
	g.logger.Info("push payment sent", zap.String("reference", p.OrderNumber), zap.String("transaction_id", txID))
	return entities.CreatePaymentResult{
		Success:              true,
		ProcessedImmediately: true,
		TransactionID:        txID,
		Status:               entities.TransactionStatusPending,
	}, nil
}

// nequiStatusPaymentRS is the getStatusPaymentRS block. Webhooks wrap it in
// the usual ResponseMessage envelope; status lookups return the same shape.
type nequiStatusPaymentRS struct {
	Status        flexString `json:"status"`
	TransactionID string     `json:"transactionId"`
	TrnID         string     `json:"trnId"`
	Value         flexString `json:"value"`
	Reference1    string     `json:"reference1"`
	PhoneNumber   string     `json:"phoneNumber"`
}

func (rs nequiStatusPaymentRS) transactionID() string {
	return firstNonEmpty(rs.TransactionID, rs.TrnID)
}

type nequiStatusPaymentAny struct {
	GetStatusPaymentRS nequiStatusPaymentRS `json:"getStatusPaymentRS"`
}

// parseNequiNotification reads ResponseMessage.ResponseBody.any.getStatusPaymentRS
// and falls back to the same fields at the top level of the body.
func parseNequiNotification(body []byte) (nequiStatusPaymentRS, error) {
	var env nequiResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nequiStatusPaymentRS{}, err
	}
	if raw := env.ResponseMessage.ResponseBody.Any; len(raw) > 0 {
		var inner nequiStatusPaymentAny
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nequiStatusPaymentRS{}, err
		}
		return inner.GetStatusPaymentRS, nil
	}
	var flat nequiStatusPaymentRS
	if err := json.Unmarshal(body, &flat); err != nil {
		return nequiStatusPaymentRS{}, err
	}
	return flat, nil
}

// VerifyWebhook checks X-Nequi-Signature, the hex HMAC-SHA256 of the raw body.
func (g *NequiGateway) VerifyWebhook(_ context.Context, req entities.WebhookRequest) entities.WebhookVerificationResult {
	if g.cfg.WebhookSecret == "" {
		return invalidWebhook("nequi webhook secret not configured")
	}
	signature := strings.TrimSpace(req.Headers.Get("X-Nequi-Signature"))
	if signature == "" {
		return invalidWebhook("missing signature")
	}
	provided, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return invalidWebhook("invalid signature")
	}
	mac := hmac.New(sha256.New, []byte(g.cfg.WebhookSecret))
	mac.Write(req.Body)
	if !hmac.Equal(mac.Sum(nil), provided) {
		g.logger.Warn("invalid webhook signature")
		return invalidWebhook("invalid signature")
	}

	n, err := parseNequiNotification(req.Body)
	if err != nil {
		return invalidWebhook("invalid payload")
	}
	if n.transactionID() == "" {
		return invalidWebhook("missing transaction id")
	}
	return entities.WebhookVerificationResult{
		Valid:         true,
		EventType:     "payment.status",
		TransactionID: n.transactionID(),
		Status:        nequiStatus(n.Status.String()),
		NativeStatus:  n.Status.String(),
		Reference:     strings.TrimSpace(n.Reference1),
		Amount:        parseAmount(n.Value.String()),
		Currency:      entities.CurrencyCOP,
		RawPayload:    req.Body,
	}
}

func (g *NequiGateway) GetTransactionStatus(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error) {
	if !g.IsConfigured() {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, g.name)
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: transaction id is required", ErrInvalidPaymentParams)
	}
	headers, err := g.authHeaders(ctx)
	if err != nil {
		return entities.TransactionStatusResult{}, err
	}

	body := g.newRequest("PaymentsService", "getStatusPayment", map[string]interface{}{
		"getStatusPaymentRQ": map[string]string{"codeQR": transactionID},
	})
	var out nequiResponse
	if err := g.api.doJSON(ctx, http.MethodPost, g.cfg.APIURL+nequiStatusPaymentPath, headers, body, &out); err != nil {
		g.token.dropIfUnauthorized(err)
		g.logger.Error("status request failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return entities.TransactionStatusResult{}, fmt.Errorf("nequi status request failed: %w", err)
	}
	if code, desc := out.status(); code != nequiStatusCodeSuccess {
		return entities.TransactionStatusResult{}, fmt.Errorf("nequi status request rejected: code=%s desc=%s", code, desc)
	}

	var rs nequiStatusPaymentAny
	if err := json.Unmarshal(out.ResponseMessage.ResponseBody.Any, &rs); err != nil {
		return entities.TransactionStatusResult{}, fmt.Errorf("decode nequi status response: %w", err)
	}
	native := rs.GetStatusPaymentRS.Status.String()
	return entities.TransactionStatusResult{
		TransactionID: transactionID,
		Status:        nequiStatus(native),
		NativeStatus:  native,
		Reference:     strings.TrimSpace(rs.GetStatusPaymentRS.Reference1),
		Amount:        parseAmount(rs.GetStatusPaymentRS.Value.String()),
		Currency:      entities.CurrencyCOP,
	}, nil
}

func (g *NequiGateway) authHeaders(ctx context.Context) (map[string]string, error) {
	token, err := g.token.get(ctx, g.now(), func(ctx context.Context) (string, time.Duration, error) {
		var out struct {
			AccessToken string `json:"access_token"`
			ExpiresIn   int64  `json:"expires_in"`
		}
		form := url.Values{"grant_type": {"client_credentials"}}.Encode()
		if err := g.api.doForm(ctx, g.cfg.AuthURL, g.cfg.ClientID, g.cfg.ClientSecret, form, &out); err != nil {
			return "", 0, fmt.Errorf("nequi token request failed: %w", err)
		}
		if out.AccessToken == "" {
			return "", 0, errors.New("nequi token response without access_token")
		}
		return out.AccessToken, time.Duration(out.ExpiresIn) * time.Second, nil
	})
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Authorization": "Bearer " + token,
		"x-api-key":     g.cfg.APIKey,
	}, nil
}

func nequiStatus(code string) entities.TransactionStatus {
	switch strings.TrimSpace(code) {
	case "35":
		return entities.TransactionStatusApproved
	case "36":
		return entities.TransactionStatusDeclined
	case "37":
		return entities.TransactionStatusVoided
	case "38":
		return entities.TransactionStatusError
	case "33", "39":
		return entities.TransactionStatusPending
	default:
		return entities.TransactionStatusPending
	}
}

// normalizeColombianPhone keeps digits and drops a leading 57 country code.
func normalizeColombianPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "57") {
		return digits[2:]
	}
	return digits
}
