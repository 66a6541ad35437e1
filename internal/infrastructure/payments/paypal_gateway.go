package payments

import (
	"context"
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
	paypalProductionAPIURL = "https://api-m.paypal.com"
	paypalSandboxAPIURL    = "https://api-m.sandbox.paypal.com"

	paypalDescriptionMaxLen = 127
)

var (
	_ interfaces.IRefundableGateway = (*PayPalGateway)(nil)
	_ interfaces.ICapturableGateway = (*PayPalGateway)(nil)
)

// PayPalGateway uses the Orders v2 API with intent CAPTURE.
//
// The buyer approves on PayPal and comes back to the return URL, where the
// order is captured (CaptureOrder). The capture webhook then completes the
// order through the webhook processor.
type PayPalGateway struct {
	baseGateway
	cfg   config.PayPalConfig
	api   apiClient
	token tokenCache
	now   func() time.Time
}

func NewPayPalGateway(cfg config.PayPalConfig, httpClient *http.Client, logger *zap.Logger) *PayPalGateway {
	switch {
	case cfg.APIURL == "":
		cfg.APIURL = paypalProductionAPIURL
	case strings.EqualFold(cfg.APIURL, "sandbox"):
		cfg.APIURL = paypalSandboxAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &PayPalGateway{
		baseGateway: newBaseGateway(
			entities.GatewayPayPal,
			[]entities.Currency{entities.CurrencyUSD, entities.CurrencyEUR},
			[]entities.PaymentMethodType{entities.PaymentMethodPayPal, entities.PaymentMethodCard},
			logger,
		),
		cfg: cfg,
		api: newAPIClient(httpClient),
		now: time.Now,
	}
}

func (g *PayPalGateway) IsConfigured() bool {
	return g.cfg.ClientID != "" && g.cfg.ClientSecret != ""
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

type paypalCapture struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Amount *paypalAmount `json:"amount,omitempty"`
}

type paypalPayments struct {
	Captures []paypalCapture `json:"captures"`
}

type paypalPurchaseUnit struct {
	ReferenceID string          `json:"reference_id,omitempty"`
	CustomID    string          `json:"custom_id,omitempty"`
	InvoiceID   string          `json:"invoice_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      *paypalAmount   `json:"amount,omitempty"`
	Payments    *paypalPayments `json:"payments,omitempty"`
}

type paypalExperienceContext struct {
	BrandName          string `json:"brand_name,omitempty"`
	UserAction         string `json:"user_action"`
	ShippingPreference string `json:"shipping_preference"`
	ReturnURL          string `json:"return_url,omitempty"`
	CancelURL          string `json:"cancel_url,omitempty"`
}

type paypalPaymentSource struct {
	PayPal struct {
		ExperienceContext paypalExperienceContext `json:"experience_context"`
	} `json:"paypal"`
}

type paypalCreateOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
	PaymentSource paypalPaymentSource  `json:"payment_source"`
}

type paypalOrder struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
	Links         []paypalLink         `json:"links"`
}

func (o paypalOrder) link(rels ...string) string {
	for _, rel := range rels {
		for _, l := range o.Links {
			if l.Rel == rel && l.Href != "" {
				return l.Href
			}
		}
	}
	return ""
}

// capture returns the first capture of the first purchase unit, if any.
func (o paypalOrder) capture() (paypalCapture, bool) {
	if len(o.PurchaseUnits) == 0 || o.PurchaseUnits[0].Payments == nil || len(o.PurchaseUnits[0].Payments.Captures) == 0 {
		return paypalCapture{}, false
	}
	return o.PurchaseUnits[0].Payments.Captures[0], true
}

func (g *PayPalGateway) CreatePayment(ctx context.Context, p entities.CreatePaymentParams) (entities.CreatePaymentResult, error) {
	if err := g.validateParams(g.IsConfigured(), p); err != nil {
		return entities.CreatePaymentResult{}, err
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		g.logger.Error("access token request failed", zap.Error(err))
		return paymentFailure("AUTHENTICATION_FAILURE", "could not authenticate with PayPal"), nil
	}

	body := paypalCreateOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			ReferenceID: p.OrderNumber,
			CustomID:    p.OrderNumber,
			InvoiceID:   p.OrderNumber,
			Description: truncate(p.Description, paypalDescriptionMaxLen),
			Amount:      &paypalAmount{CurrencyCode: string(p.Currency), Value: formatAmount(p.Amount, p.Currency)},
		}},
	}
	body.PaymentSource.PayPal.ExperienceContext = paypalExperienceContext{
		BrandName:          g.cfg.BrandName,
		UserAction:         "PAY_NOW",
		ShippingPreference: "NO_SHIPPING",
		ReturnURL:          p.RedirectURL,
		CancelURL:          firstNonEmpty(p.CancelURL, p.RedirectURL),
	}

	requestID := p.OrderID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	headers := map[string]string{
		"Authorization":     "Bearer " + token,
		"PayPal-Request-Id": requestID,
		"Prefer":            "return=representation",
	}

	var order paypalOrder
	if err := g.api.doJSON(ctx, http.MethodPost, g.cfg.APIURL+"/v2/checkout/orders", headers, body, &order); err != nil {
		g.token.dropIfUnauthorized(err)
		code, msg := paypalErrorDetails(err)
		g.logger.Error("create order failed", zap.String("reference", p.OrderNumber), zap.String("error_code", code), zap.Error(err))
		return paymentFailure(code, msg), nil
	}

	approveURL := order.link("payer-action", "approve")
	if approveURL == "" {
		g.logger.Error("order without approval link", zap.String("paypal_order_id", order.ID))
		return paymentFailure("MISSING_APPROVAL_LINK", "PayPal did not return an approval link"), nil
	}

	g.logger.Info("order created", zap.String("reference", p.OrderNumber), zap.String("paypal_order_id", order.ID), zap.String("status", order.Status))
	return entities.CreatePaymentResult{
		Success:       true,
		RedirectURL:   approveURL,
		TransactionID: order.ID,
		Status:        paypalStatus(order.Status),
	}, nil
}

type paypalWebhookEvent struct {
	ID           string         `json:"id"`
	EventType    string         `json:"event_type"`
	ResourceType string         `json:"resource_type"`
	Resource     paypalResource `json:"resource"`
}

type paypalResource struct {
	ID                string               `json:"id"`
	Status            string               `json:"status"`
	CustomID          string               `json:"custom_id"`
	InvoiceID         string               `json:"invoice_id"`
	Amount            *paypalAmount        `json:"amount"`
	PurchaseUnits     []paypalPurchaseUnit `json:"purchase_units"`
	SupplementaryData struct {
		RelatedIDs struct {
			OrderID string `json:"order_id"`
		} `json:"related_ids"`
	} `json:"supplementary_data"`
}

type paypalVerifySignatureRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

// VerifyWebhook delegates the signature check to PayPal's
// verify-webhook-signature endpoint using the transmission headers.
//
// TransactionID is always the PayPal order id so that status polls keep
// working after a capture event; the capture id travels in CaptureID.
func (g *PayPalGateway) VerifyWebhook(ctx context.Context, req entities.WebhookRequest) entities.WebhookVerificationResult {
	if !g.IsConfigured() || g.cfg.WebhookID == "" {
		return invalidWebhook("paypal webhook verification not configured")
	}

	verifyReq := paypalVerifySignatureRequest{
		AuthAlgo:         req.Headers.Get("Paypal-Auth-Algo"),
		CertURL:          req.Headers.Get("Paypal-Cert-Url"),
		TransmissionID:   req.Headers.Get("Paypal-Transmission-Id"),
		TransmissionSig:  req.Headers.Get("Paypal-Transmission-Sig"),
		TransmissionTime: req.Headers.Get("Paypal-Transmission-Time"),
		WebhookID:        g.cfg.WebhookID,
	}
	if verifyReq.AuthAlgo == "" || verifyReq.CertURL == "" || verifyReq.TransmissionID == "" || verifyReq.TransmissionSig == "" || verifyReq.TransmissionTime == "" {
		return invalidWebhook("missing PayPal transmission headers")
	}
	if !json.Valid(req.Body) {
		return invalidWebhook("invalid payload")
	}
	verifyReq.WebhookEvent = json.RawMessage(req.Body)

	token, err := g.accessToken(ctx)
	if err != nil {
		g.logger.Error("access token request failed", zap.Error(err))
		return invalidWebhook("verification request failed")
	}

	var out struct {
		VerificationStatus string `json:"verification_status"`
	}
	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := g.api.doJSON(ctx, http.MethodPost, g.cfg.APIURL+"/v1/notifications/verify-webhook-signature", headers, verifyReq, &out); err != nil {
		g.token.dropIfUnauthorized(err)
		g.logger.Error("webhook verification request failed", zap.String("transmission_id", verifyReq.TransmissionID), zap.Error(err))
		return invalidWebhook("verification request failed")
	}
	if out.VerificationStatus != "SUCCESS" {
		g.logger.Warn("invalid webhook signature", zap.String("transmission_id", verifyReq.TransmissionID), zap.String("verification_status", out.VerificationStatus))
		return invalidWebhook("invalid signature")
	}

	var event paypalWebhookEvent
	if err := json.Unmarshal(req.Body, &event); err != nil {
		return invalidWebhook("invalid payload")
	}

	res := event.Resource
	result := entities.WebhookVerificationResult{
		Valid:         true,
		EventType:     event.EventType,
		TransactionID: res.ID,
		Status:        paypalEventStatus(event.EventType, res.Status),
		NativeStatus:  res.Status,
		Reference:     paypalReference(res),
		RawPayload:    req.Body,
	}
	if event.ResourceType == "capture" || strings.HasPrefix(event.EventType, "PAYMENT.CAPTURE.") {
		result.CaptureID = res.ID
		if orderID := res.SupplementaryData.RelatedIDs.OrderID; orderID != "" {
			result.TransactionID = orderID
		}
	}
	amount := res.Amount
	if amount == nil && len(res.PurchaseUnits) > 0 {
		amount = res.PurchaseUnits[0].Amount
	}
	if amount != nil {
		result.Amount = parseAmount(amount.Value)
		result.Currency = entities.Currency(amount.CurrencyCode)
	}
	return result
}

func (g *PayPalGateway) GetTransactionStatus(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error) {
	if !g.IsConfigured() {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, g.name)
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: transaction id is required", ErrInvalidPaymentParams)
	}
	token, err := g.accessToken(ctx)
	if err != nil {
		return entities.TransactionStatusResult{}, err
	}

	var order paypalOrder
	endpoint := g.cfg.APIURL + "/v2/checkout/orders/" + url.PathEscape(transactionID)
	if err := g.api.doJSON(ctx, http.MethodGet, endpoint, map[string]string{"Authorization": "Bearer " + token}, nil, &order); err != nil {
		g.token.dropIfUnauthorized(err)
		g.logger.Error("order lookup failed", zap.String("paypal_order_id", transactionID), zap.Error(err))
		return entities.TransactionStatusResult{}, fmt.Errorf("paypal order lookup failed: %w", err)
	}
	return paypalOrderStatus(order, transactionID), nil
}

// CaptureOrder captures a buyer-approved order. An order that was already
// captured is answered with its current status.
func (g *PayPalGateway) CaptureOrder(ctx context.Context, transactionID string) (entities.TransactionStatusResult, error) {
	if !g.IsConfigured() {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, g.name)
	}
	if strings.TrimSpace(transactionID) == "" {
		return entities.TransactionStatusResult{}, fmt.Errorf("%w: transaction id is required", ErrInvalidPaymentParams)
	}
	token, err := g.accessToken(ctx)
	if err != nil {
		return entities.TransactionStatusResult{}, err
	}

	headers := map[string]string{
		"Authorization":     "Bearer " + token,
		"PayPal-Request-Id": "capture-" + transactionID,
		"Prefer":            "return=representation",
	}
	var order paypalOrder
	endpoint := g.cfg.APIURL + "/v2/checkout/orders/" + url.PathEscape(transactionID) + "/capture"
	if err := g.api.doJSON(ctx, http.MethodPost, endpoint, headers, struct{}{}, &order); err != nil {
		g.token.dropIfUnauthorized(err)
		if code, _ := paypalErrorDetails(err); code == "ORDER_ALREADY_CAPTURED" {
			g.logger.Info("order already captured", zap.String("paypal_order_id", transactionID))
			return g.GetTransactionStatus(ctx, transactionID)
		}
		g.logger.Error("capture failed", zap.String("paypal_order_id", transactionID), zap.Error(err))
		return entities.TransactionStatusResult{}, fmt.Errorf("paypal capture failed: %w", err)
	}

	result := paypalOrderStatus(order, transactionID)
	g.logger.Info("order captured", zap.String("paypal_order_id", transactionID), zap.String("capture_id", result.CaptureID), zap.String("status", result.NativeStatus))
	return result, nil
}

func (g *PayPalGateway) Refund(ctx context.Context, p entities.RefundParams) (entities.RefundResult, error) {
	if !g.IsConfigured() {
		return entities.RefundResult{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, g.name)
	}
	if strings.TrimSpace(p.TransactionID) == "" {
		return entities.RefundResult{}, fmt.Errorf("%w: capture id is required", ErrInvalidPaymentParams)
	}
	if p.Amount.IsNegative() {
		return entities.RefundResult{}, ErrInvalidAmount
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		g.logger.Error("access token request failed", zap.Error(err))
		return entities.RefundResult{Success: false, ErrorCode: "AUTHENTICATION_FAILURE", Error: "could not authenticate with PayPal"}, nil
	}

	body := map[string]interface{}{}
	if p.Amount.IsPositive() {
		body["amount"] = paypalAmount{CurrencyCode: string(p.Currency), Value: formatAmount(p.Amount, p.Currency)}
	}
	if p.Reason != "" {
		body["note_to_payer"] = truncate(p.Reason, 255)
	}
	headers := map[string]string{
		"Authorization":     "Bearer " + token,
		"PayPal-Request-Id": uuid.NewString(),
	}

	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	endpoint := g.cfg.APIURL + "/v2/payments/captures/" + url.PathEscape(p.TransactionID) + "/refund"
	if err := g.api.doJSON(ctx, http.MethodPost, endpoint, headers, body, &out); err != nil {
		g.token.dropIfUnauthorized(err)
		code, msg := paypalErrorDetails(err)
		g.logger.Error("refund failed", zap.String("capture_id", p.TransactionID), zap.String("error_code", code), zap.Error(err))
		return entities.RefundResult{Success: false, ErrorCode: code, Error: msg}, nil
	}

	switch out.Status {
	case "COMPLETED", "PENDING":
		g.logger.Info("refund created", zap.String("capture_id", p.TransactionID), zap.String("refund_id", out.ID), zap.String("status", out.Status))
		return entities.RefundResult{Success: true, RefundID: out.ID, NativeStatus: out.Status}, nil
	default:
		return entities.RefundResult{Success: false, RefundID: out.ID, NativeStatus: out.Status, ErrorCode: out.Status, Error: "refund " + strings.ToLower(out.Status)}, nil
	}
}

func (g *PayPalGateway) accessToken(ctx context.Context) (string, error) {
	return g.token.get(ctx, g.now(), func(ctx context.Context) (string, time.Duration, error) {
		var out struct {
			AccessToken string `json:"access_token"`
			ExpiresIn   int64  `json:"expires_in"`
		}
		form := url.Values{"grant_type": {"client_credentials"}}.Encode()
		if err := g.api.doForm(ctx, g.cfg.APIURL+"/v1/oauth2/token", g.cfg.ClientID, g.cfg.ClientSecret, form, &out); err != nil {
			return "", 0, fmt.Errorf("paypal token request failed: %w", err)
		}
		if out.AccessToken == "" {
			return "", 0, errors.New("paypal token response without access_token")
		}
		return out.AccessToken, time.Duration(out.ExpiresIn) * time.Second, nil
	})
}

func paypalOrderStatus(order paypalOrder, transactionID string) entities.TransactionStatusResult {
	result := entities.TransactionStatusResult{
		TransactionID: firstNonEmpty(order.ID, transactionID),
		Status:        paypalStatus(order.Status),
		NativeStatus:  order.Status,
	}
	if len(order.PurchaseUnits) > 0 {
		pu := order.PurchaseUnits[0]
		result.Reference = firstNonEmpty(pu.CustomID, pu.ReferenceID, pu.InvoiceID)
		if pu.Amount != nil {
			result.Amount = parseAmount(pu.Amount.Value)
			result.Currency = entities.Currency(pu.Amount.CurrencyCode)
		}
	}
	if c, ok := order.capture(); ok {
		result.CaptureID = c.ID
		result.Status = paypalStatus(c.Status)
		result.NativeStatus = c.Status
		if c.Amount != nil {
			result.Amount = parseAmount(c.Amount.Value)
			result.Currency = entities.Currency(c.Amount.CurrencyCode)
		}
	}
	return result
}

// paypalReference resolves our order number from a webhook resource:
// purchase unit custom_id, then reference_id, then the resource's own
// custom_id and invoice_id (capture resources carry those directly).
func paypalReference(res paypalResource) string {
	if len(res.PurchaseUnits) > 0 {
		pu := res.PurchaseUnits[0]
		if ref := firstNonEmpty(pu.CustomID, pu.ReferenceID); ref != "" {
			return ref
		}
	}
	return firstNonEmpty(res.CustomID, res.InvoiceID)
}

func paypalStatus(native string) entities.TransactionStatus {
	switch strings.ToUpper(strings.TrimSpace(native)) {
	case "COMPLETED":
		return entities.TransactionStatusApproved
	case "APPROVED", "CREATED", "SAVED", "PAYER_ACTION_REQUIRED", "PENDING":
		// APPROVED means the buyer approved but the order is not captured yet.
		return entities.TransactionStatusPending
	case "DECLINED", "FAILED":
		return entities.TransactionStatusDeclined
	case "VOIDED", "REFUNDED", "PARTIALLY_REFUNDED", "REVERSED":
		return entities.TransactionStatusVoided
	default:
		return entities.TransactionStatusPending
	}
}

func paypalEventStatus(eventType, resourceStatus string) entities.TransactionStatus {
	switch eventType {
	case "PAYMENT.CAPTURE.COMPLETED":
		return entities.TransactionStatusApproved
	case "PAYMENT.CAPTURE.DENIED":
		return entities.TransactionStatusDeclined
	case "PAYMENT.CAPTURE.REFUNDED", "PAYMENT.CAPTURE.REVERSED", "CHECKOUT.ORDER.VOIDED":
		return entities.TransactionStatusVoided
	case "CHECKOUT.ORDER.APPROVED", "PAYMENT.CAPTURE.PENDING":
		return entities.TransactionStatusPending
	default:
		return paypalStatus(resourceStatus)
	}
}

// paypalErrorDetails extracts name/message from a PayPal error body.
func paypalErrorDetails(err error) (code, message string) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return "NETWORK_ERROR", "could not reach PayPal"
	}
	var body struct {
		Name    string `json:"name"`
		Message string `json:"message"`
		Details []struct {
			Issue       string `json:"issue"`
			Description string `json:"description"`
		} `json:"details"`
	}
	if json.Unmarshal([]byte(apiErr.Body), &body) != nil {
		return fmt.Sprintf("HTTP_%d", apiErr.StatusCode), "PayPal request failed"
	}
	code = body.Name
	message = body.Message
	if len(body.Details) > 0 {
		code = firstNonEmpty(body.Details[0].Issue, code)
		message = firstNonEmpty(body.Details[0].Description, message)
	}
	if code == "" {
		code = fmt.Sprintf("HTTP_%d", apiErr.StatusCode)
	}
	if message == "" {
		message = "PayPal request failed"
	}
	return code, message
}
