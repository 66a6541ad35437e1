package payments

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"energia_divinidad/internal/config"
	"energia_divinidad/internal/domain/entities"
	"energia_divinidad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	epaycoAPIURL        = "https://apify.epayco.co"
	epaycoCheckoutURL   = "https://checkout.epayco.co/checkout.html"
	epaycoValidationURL = "https://secure.epayco.co/validation/v1/reference"
)

var _ interfaces.IPaymentGateway = (*EpaycoGateway)(nil)

// EpaycoGateway creates a Smart Checkout session and redirects to it.
// Confirmations arrive form-encoded (POST body or GET query string).
type EpaycoGateway struct {
	baseGateway
	cfg config.EpaycoConfig
	api apiClient
}

func NewEpaycoGateway(cfg config.EpaycoConfig, httpClient *http.Client, logger *zap.Logger) *EpaycoGateway {
	if cfg.APIURL == "" {
		cfg.APIURL = epaycoAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.CheckoutURL == "" {
		cfg.CheckoutURL = epaycoCheckoutURL
	}
	if cfg.ValidationURL == "" {
		cfg.ValidationURL = epaycoValidationURL
	}
	cfg.ValidationURL = strings.TrimRight(cfg.ValidationURL, "/")
	return &EpaycoGateway{
		baseGateway: newBaseGateway(
			entities.GatewayEpayco,
			[]entities.Currency{entities.CurrencyCOP, entities.CurrencyUSD},
			[]entities.PaymentMethodType{entities.PaymentMethodCard, entities.PaymentMethodPSE, entities.PaymentMethodBankTransfer},
			logger,
		),
		cfg: cfg,
		api: newAPIClient(httpClient),
	}
}

func (g *EpaycoGateway) IsConfigured() bool {
	return g.cfg.CustomerID != "" && g.cfg.PKey != "" && g.cfg.PublicKey != "" && g.cfg.PrivateKey != ""
}

type epaycoSessionRequest struct {
	CheckoutVersion    string `json:"checkout_version"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Currency           string `json:"currency"`
	Amount             string `json:"amount"`
	Lang               string `json:"lang"`
	Country            string `json:"country"`
	Invoice            string `json:"invoice"`
	Test               bool   `json:"test"`
	Response           string `json:"response,omitempty"`
	Confirmation       string `json:"confirmation,omitempty"`
	Method             string `json:"method"`
	Extra1             string `json:"extra1,omitempty"`
	NameBilling        string `json:"name_billing,omitempty"`
	EmailBilling       string `json:"email_billing,omitempty"`
	MobilephoneBilling string `json:"mobilephone_billing,omitempty"`
}

type epaycoSessionResponse struct {
	Success       bool   `json:"success"`
	TitleResponse string `json:"titleResponse"`
	TextResponse  string `json:"textResponse"`
	Data          struct {
		SessionID string `json:"sessionId"`
	} `json:"data"`
}

func (g *EpaycoGateway) CreatePayment(ctx context.Context, p entities.CreatePaymentParams) (entities.CreatePaymentResult, error) {
	if err := g.validateParams(g.IsConfigured(), p); err != nil {
		return entities.CreatePaymentResult{}, err
	}

	token, err := g.login(ctx)
	if err != nil {
		g.logger.Error("login failed", zap.Error(err))
		return paymentFailure("AUTHENTICATION_FAILURE", "could not authenticate with ePayco"), nil
	}

	body := epaycoSessionRequest{
		CheckoutVersion:    "2",
		Name:               truncate(firstNonEmpty(p.Description, p.OrderNumber), 60),
		Description:        truncate(firstNonEmpty(p.Description, p.OrderNumber), 250),
		Currency:           strings.ToLower(string(p.Currency)),
		Amount:             formatAmount(p.Amount, p.Currency),
		Lang:               "ES",
		Country:            "CO",
		Invoice:            p.OrderNumber,
		Test:               g.cfg.Test,
		Response:           p.RedirectURL,
		Confirmation:       p.WebhookURL,
		Method:             "POST",
		Extra1:             p.OrderID,
		NameBilling:        p.Customer.FullName,
		EmailBilling:       p.Customer.Email,
		MobilephoneBilling: p.Customer.Phone,
	}

	var out epaycoSessionResponse
	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := g.api.doJSON(ctx, http.MethodPost, g.cfg.APIURL+"/payment/session/create", headers, body, &out); err != nil {
		g.logger.Error("session create failed", zap.String("reference", p.OrderNumber), zap.Error(err))
		return paymentFailure("NETWORK_ERROR", "could not reach ePayco"), nil
	}
	if !out.Success || out.Data.SessionID == "" {
		msg := firstNonEmpty(out.TextResponse, out.TitleResponse, "ePayco rejected the checkout session")
		g.logger.Warn("session create rejected", zap.String("reference", p.OrderNumber), zap.String("message", msg))
		return paymentFailure("SESSION_REJECTED", msg), nil
	}

	u, err := url.Parse(g.cfg.CheckoutURL)
	if err != nil {
		return paymentFailure("CHECKOUT_URL_INVALID", "invalid ePayco checkout URL"), nil
	}
	q := u.Query()
	q.Set("sessionId", out.Data.SessionID)
	u.RawQuery = q.Encode()

	g.logger.Info("checkout session created", zap.String("reference", p.OrderNumber), zap.String("session_id", out.Data.SessionID))
	return entities.CreatePaymentResult{
		Success:     true,
		RedirectURL: u.String(),
		Status:      entities.TransactionStatusPending,
	}, nil
}

// VerifyWebhook checks x_signature, the sha256 of
// cust_id^p_key^x_ref_payco^x_transaction_id^x_amount^x_currency_code.
func (g *EpaycoGateway) VerifyWebhook(_ context.Context, req entities.WebhookRequest) entities.WebhookVerificationResult {
	if g.cfg.CustomerID == "" || g.cfg.PKey == "" {
		return invalidWebhook("epayco signature keys not configured")
	}
	form, err := url.ParseQuery(strings.TrimSpace(string(req.Body)))
	if err != nil {
		return invalidWebhook("invalid payload")
	}

	signature := strings.TrimSpace(form.Get("x_signature"))
	if signature == "" {
		return invalidWebhook("missing signature")
	}
	refPayco := form.Get("x_ref_payco")
	expected := sha256Hex(strings.Join([]string{
		g.cfg.CustomerID,
		g.cfg.PKey,
		refPayco,
		form.Get("x_transaction_id"),
		form.Get("x_amount"),
		form.Get("x_currency_code"),
	}, "^"))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		g.logger.Warn("invalid webhook signature", zap.String("ref_payco", refPayco))
		return invalidWebhook("invalid signature")
	}

	native := firstNonEmpty(form.Get("x_cod_response"), form.Get("x_cod_transaction_state"))
	return entities.WebhookVerificationResult{
		Valid:         true,
		EventType:     "confirmation",
		TransactionID: refPayco,
		Status:        epaycoStatus(native),
		NativeStatus:  firstNonEmpty(form.Get("x_response"), native),
		Reference:     form.Get("x_id_invoice"),
		Amount:        parseAmount(form.Get("x_amount")),
		Currency:      entities.Currency(strings.ToUpper(form.Get("x_currency_code"))),
		RawPayload:    req.Body,
	}
}

// GetTransactionStatus looks up a transaction by its ePayco reference (ref_payco).
func (g *EpaycoGateway) GetTransactionStatus(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error) {
	if !g.IsConfigured() {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, g.name)
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: transaction id is required", ErrInvalidPaymentParams)
	}

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			CodResponse  flexString `json:"x_cod_response"`
			Response     string     `json:"x_response"`
			RefPayco     flexString `json:"x_ref_payco"`
			IDInvoice    string     `json:"x_id_invoice"`
			Amount       flexString `json:"x_amount"`
			CurrencyCode string     `json:"x_currency_code"`
		} `json:"data"`
	}
	endpoint := g.cfg.ValidationURL + "/" + url.PathEscape(transactionID)
	if err := g.api.doJSON(ctx, http.MethodGet, endpoint, nil, nil, &out); err != nil {
		g.logger.Error("transaction lookup failed", zap.String("ref_payco", transactionID), zap.Error(err))
		return entities.TransactionStatusResult{}, fmt.Errorf("epayco transaction lookup failed: %w", err)
	}
	if !out.Success {
		return entities.TransactionStatusResult{}, fmt.Errorf("epayco transaction %s not found", transactionID)
	}

	d := out.Data
	return entities.TransactionStatusResult{
		TransactionID: firstNonEmpty(d.RefPayco.String(), transactionID),
		Status:        epaycoStatus(d.CodResponse.String()),
		NativeStatus:  firstNonEmpty(d.Response, d.CodResponse.String()),
		Reference:     d.IDInvoice,
		Amount:        parseAmount(d.Amount.String()),
		Currency:      entities.Currency(strings.ToUpper(d.CurrencyCode)),
	}, nil
}

func (g *EpaycoGateway) login(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL+"/login", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.PublicKey, g.cfg.PrivateKey)
	req.Header.Set("Accept", "application/json")

	var out struct {
		Token string `json:"token"`
	}
	if err := g.api.do(req, &out); err != nil {
		return "", fmt.Errorf("epayco login failed: %w", err)
	}
	if out.Token == "" {
		return "", errors.New("epayco login response without token")
	}
	return out.Token, nil
}

func epaycoStatus(code string) entities.TransactionStatus {
	switch strings.TrimSpace(code) {
	case "1":
		return entities.TransactionStatusApproved
	case "2", "10":
		return entities.TransactionStatusDeclined
	case "3", "7":
		return entities.TransactionStatusPending
	case "4":
		return entities.TransactionStatusError
	case "6", "11":
		return entities.TransactionStatusVoided
	default:
		return entities.TransactionStatusPending
	}
}
