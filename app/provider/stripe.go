package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/signature"
)

const StripeCode = "stripe"

const stripeDefaultAPIBaseURL = "https://api.stripe.com"

var stripeCodec = signature.Codec{Delimiter: "."}

type StripeConfig struct {
	SecretKey                 string
	WebhookSecret             string
	APIBaseURL                string
	SignatureToleranceSeconds int64
	HTTPTimeout               time.Duration
	Clock                     func() time.Time
}

type StripeProvider struct {
	cfg    StripeConfig
	client *http.Client
}

func NewStripeProvider(cfg StripeConfig) *StripeProvider {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cfg.HTTPTimeout = timeout
	if cfg.SignatureToleranceSeconds <= 0 {
		cfg.SignatureToleranceSeconds = 300
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = stripeDefaultAPIBaseURL
	}

	return &StripeProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *StripeProvider) Code() string {
	return StripeCode
}

func (p *StripeProvider) CreatePayment(ctx context.Context, order *entity.Order, opts CreateOptions) (*PaymentIntent, error) {
	if strings.TrimSpace(p.cfg.SecretKey) == "" {
		return nil, fmt.Errorf("%w: stripe secret key is missing", ErrConfiguration)
	}
	if strings.TrimSpace(p.cfg.WebhookSecret) == "" {
		return nil, fmt.Errorf("%w: stripe webhook secret is missing", ErrConfiguration)
	}
	successURL := strings.TrimSpace(opts.SuccessURL)
	cancelURL := strings.TrimSpace(opts.FailURL)
	if successURL == "" || cancelURL == "" {
		return nil, fmt.Errorf("%w: stripe return urls are not configured", ErrConfiguration)
	}
	if order == nil || strings.TrimSpace(order.OrderNumber) == "" {
		return nil, fmt.Errorf("%w: order number is required", ErrInvalidInput)
	}
	if order.TotalMinor <= 0 {
		return nil, fmt.Errorf("%w: order total must be positive", ErrInvalidInput)
	}

	description := strings.TrimSpace(opts.Description)
	if description == "" {
		description = "Order " + order.OrderNumber
	}

	values := url.Values{}
	values.Set("mode", "payment")
	values.Set("line_items[0][quantity]", "1")
	values.Set("line_items[0][price_data][currency]", strings.ToLower(order.Currency))
	values.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(order.TotalMinor, 10))
	values.Set("line_items[0][price_data][product_data][name]", description)
	values.Set("success_url", successURL)
	values.Set("cancel_url", cancelURL)
	values.Set("client_reference_id", order.OrderNumber)
	values.Set("metadata[order_number]", order.OrderNumber)
	if opts.Reference != "" {
		values.Set("metadata[attempt_reference]", opts.Reference)
	}
	if email := derefString(order.ContactEmail); email != "" {
		values.Set("customer_email", email)
	}

	body, err := p.postForm(ctx, "/v1/checkout/sessions", values, opts.Reference)
	if err != nil {
		return nil, err
	}

	var payload struct {
		ID        string `json:"id"`
		URL       string `json:"url"`
		ExpiresAt int64  `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode checkout session: %v", ErrProviderRequest, err)
	}
	if strings.TrimSpace(payload.ID) == "" || strings.TrimSpace(payload.URL) == "" {
		return nil, fmt.Errorf("%w: stripe checkout session is incomplete", ErrProviderRequest)
	}

	intent := &PaymentIntent{
		Provider:          StripeCode,
		ProviderPaymentID: strings.TrimSpace(payload.ID),
		RedirectURL:       strings.TrimSpace(payload.URL),
	}
	if payload.ExpiresAt > 0 {
		intent.ExpiresAt = time.Unix(payload.ExpiresAt, 0).UTC()
	}
	return intent, nil
}

// VerifyWebhook checks the Stripe-Signature header: HMAC-SHA256 over
// "<t>.<raw body>" within the configured timestamp tolerance.
func (p *StripeProvider) VerifyWebhook(cb *Callback) bool {
	if cb == nil || cb.Header == nil {
		return false
	}
	header := strings.TrimSpace(cb.Header.Get("Stripe-Signature"))
	secret := strings.TrimSpace(p.cfg.WebhookSecret)
	if header == "" || secret == "" {
		return false
	}

	var ts string
	v1 := make([]string, 0, 1)
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "t=") {
			ts = strings.TrimSpace(strings.TrimPrefix(part, "t="))
		}
		if strings.HasPrefix(part, "v1=") {
			v1 = append(v1, strings.TrimSpace(strings.TrimPrefix(part, "v1=")))
		}
	}
	if ts == "" || len(v1) == 0 {
		return false
	}

	tsUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return false
	}
	now := nowOrDefault(p.cfg.Clock).Unix()
	tolerance := p.cfg.SignatureToleranceSeconds
	if now-tsUnix > tolerance || tsUnix-now > tolerance {
		return false
	}

	fields := []string{ts, string(cb.Body)}
	for _, sig := range v1 {
		if stripeCodec.Verify(p.cfg.WebhookSecret, fields, sig) {
			return true
		}
	}
	return false
}

func (p *StripeProvider) ClaimedSignature(cb *Callback) string {
	if cb == nil || cb.Header == nil {
		return ""
	}
	return strings.TrimSpace(cb.Header.Get("Stripe-Signature"))
}

func (p *StripeProvider) ProcessWebhook(cb *Callback) (*WebhookEvent, error) {
	var event struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID                string            `json:"id"`
				ClientReferenceID string            `json:"client_reference_id"`
				PaymentIntent     interface{}       `json:"payment_intent"`
				PaymentStatus     string            `json:"payment_status"`
				AmountTotal       *int64            `json:"amount_total"`
				Metadata          map[string]string `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(cb.Body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCallback, err)
	}

	object := event.Data.Object
	orderNumber := strings.TrimSpace(object.ClientReferenceID)
	if orderNumber == "" {
		orderNumber = strings.TrimSpace(object.Metadata["order_number"])
	}
	if orderNumber == "" {
		return nil, fmt.Errorf("%w: order reference is missing", ErrMalformedCallback)
	}

	result := &WebhookEvent{
		OrderNumber:       orderNumber,
		Status:            stripeStatus(event.Type, object.PaymentStatus),
		RawStatus:         event.Type,
		ProviderPaymentID: strings.TrimSpace(object.ID),
		Metadata: map[string]string{
			"event_id":   strings.TrimSpace(event.ID),
			"session_id": strings.TrimSpace(object.ID),
		},
	}
	if intentID := parseStringish(object.PaymentIntent); intentID != "" {
		result.ProviderTransactionID = intentID
	} else {
		result.ProviderTransactionID = strings.TrimSpace(object.ID)
	}
	if object.AmountTotal != nil {
		result.RawAmount = strconv.FormatInt(*object.AmountTotal, 10)
	}
	return result, nil
}

func (p *StripeProvider) ProcessRefund(ctx context.Context, paymentID string, amountMinor int64) (*RefundOutcome, error) {
	if strings.TrimSpace(p.cfg.SecretKey) == "" {
		return nil, fmt.Errorf("%w: stripe secret key is missing", ErrConfiguration)
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, fmt.Errorf("%w: payment intent id is required", ErrInvalidInput)
	}
	if amountMinor <= 0 {
		return nil, fmt.Errorf("%w: refund amount must be positive", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.HTTPTimeout)
	defer cancel()

	values := url.Values{}
	values.Set("payment_intent", paymentID)
	values.Set("amount", strconv.FormatInt(amountMinor, 10))

	body, err := p.postForm(ctx, "/v1/refunds", values, "")
	if err != nil {
		return nil, err
	}

	var payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode refund: %v", ErrProviderRequest, err)
	}

	return &RefundOutcome{
		RefundID:    strings.TrimSpace(payload.ID),
		Status:      strings.TrimSpace(payload.Status),
		AmountMinor: payload.Amount,
	}, nil
}

func (p *StripeProvider) Ack() WebhookReply {
	return WebhookReply{StatusCode: http.StatusOK, ContentType: "application/json", Body: []byte(`{"received":true}`)}
}

func (p *StripeProvider) Reject() WebhookReply {
	return WebhookReply{StatusCode: http.StatusBadRequest, ContentType: "application/json", Body: []byte(`{"received":false}`)}
}

func (p *StripeProvider) postForm(ctx context.Context, path string, values url.Values, idempotencyKey string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.APIBaseURL+path, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	if resp.StatusCode >= 400 {
		return nil, stripeError(path, resp.StatusCode, body)
	}

	return body, nil
}

// stripeError classifies a failed API call. Rate limiting and server errors
// may pass on retry; other client errors will not.
func stripeError(path string, statusCode int, body []byte) error {
	var payload struct {
		Error struct {
			Type string `json:"type"`
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	detail := fmt.Sprintf("stripe path=%s status=%d type=%s code=%s", path, statusCode, payload.Error.Type, payload.Error.Code)

	switch {
	case statusCode == http.StatusTooManyRequests || statusCode >= 500:
		return fmt.Errorf("%w: %s", ErrProviderRequest, detail)
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrConfiguration, detail)
	default:
		return fmt.Errorf("%w: %s", ErrProviderRejected, detail)
	}
}

func stripeStatus(eventType, paymentStatus string) entity.PaymentStatus {
	switch eventType {
	case "checkout.session.completed":
		switch paymentStatus {
		case "paid", "no_payment_required":
			return entity.PaymentStatusPaid
		default:
			return entity.PaymentStatusPending
		}
	case "checkout.session.async_payment_succeeded":
		return entity.PaymentStatusPaid
	case "checkout.session.async_payment_failed":
		return entity.PaymentStatusFailed
	case "checkout.session.expired":
		return entity.PaymentStatusCancelled
	default:
		return entity.PaymentStatusPending
	}
}

func parseStringish(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]interface{}:
		if raw, ok := t["id"]; ok {
			if s, ok := raw.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
