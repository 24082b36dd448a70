package types

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const maxWebhookBodyBytes = 1 << 20

func NewCheckoutRequestFromContext(ctx echo.Context) (*CheckoutRequest, error) {
	var body CheckoutRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.RequestId = strings.TrimSpace(body.RequestId)
	if body.RequestId == "" {
		body.RequestId = strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
	}
	body.normalize()

	return &body, nil
}

func (r *CheckoutRequest) normalize() {
	r.CartId = strings.TrimSpace(r.CartId)
	r.Provider = strings.ToLower(strings.TrimSpace(r.Provider))
	r.CustomerRef = strings.TrimSpace(r.CustomerRef)
	r.GuestSessionId = strings.TrimSpace(r.GuestSessionId)
	r.ContactEmail = strings.ToLower(strings.TrimSpace(r.ContactEmail))
	r.ContactPhone = strings.TrimSpace(r.ContactPhone)
	r.SuccessUrl = strings.TrimSpace(r.SuccessUrl)
	r.FailUrl = strings.TrimSpace(r.FailUrl)
	r.Language = strings.ToUpper(strings.TrimSpace(r.Language))
}

func (r *CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.GetRequestId()) == "" {
		return errors.New("request_id is required")
	}
	if strings.TrimSpace(r.GetCartId()) == "" {
		return errors.New("cart_id is required")
	}
	if strings.TrimSpace(r.GetProvider()) == "" {
		return errors.New("provider is required")
	}
	if err := validateIdentity(r.GetCustomerRef(), r.GetGuestSessionId()); err != nil {
		return err
	}
	if strings.TrimSpace(r.GetCustomerRef()) == "" && r.GetContactEmail() == "" && r.GetContactPhone() == "" {
		return errors.New("guest checkout requires contact_email or contact_phone")
	}
	if email := r.GetContactEmail(); email != "" && !strings.Contains(email, "@") {
		return errors.New("contact_email is invalid")
	}
	return validateReturnURLs(r.GetSuccessUrl(), r.GetFailUrl())
}

func NewRetryPaymentRequestFromContext(ctx echo.Context) (*RetryPaymentRequest, error) {
	var body RetryPaymentRequest
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	body.OrderNumber = strings.TrimSpace(ctx.Param("number"))
	body.Provider = strings.ToLower(strings.TrimSpace(body.Provider))
	body.CustomerRef = strings.TrimSpace(body.CustomerRef)
	body.GuestSessionId = strings.TrimSpace(body.GuestSessionId)
	body.SuccessUrl = strings.TrimSpace(body.SuccessUrl)
	body.FailUrl = strings.TrimSpace(body.FailUrl)
	body.Language = strings.ToUpper(strings.TrimSpace(body.Language))

	return &body, nil
}

func (r *RetryPaymentRequest) Validate() error {
	if strings.TrimSpace(r.GetOrderNumber()) == "" {
		return errors.New("order number is required")
	}
	if err := validateIdentity(r.GetCustomerRef(), r.GetGuestSessionId()); err != nil {
		return err
	}
	return validateReturnURLs(r.GetSuccessUrl(), r.GetFailUrl())
}

func NewGetOrderPaymentRequestFromContext(ctx echo.Context) (*GetOrderPaymentRequest, error) {
	return &GetOrderPaymentRequest{
		OrderNumber:    strings.TrimSpace(ctx.Param("number")),
		CustomerRef:    strings.TrimSpace(ctx.QueryParam("customer_ref")),
		GuestSessionId: strings.TrimSpace(ctx.QueryParam("guest_session_id")),
	}, nil
}

func (r *GetOrderPaymentRequest) Validate() error {
	if strings.TrimSpace(r.GetOrderNumber()) == "" {
		return errors.New("order number is required")
	}
	return validateIdentity(r.GetCustomerRef(), r.GetGuestSessionId())
}

func NewGetOrderDetailsRequestFromContext(ctx echo.Context) (*GetOrderDetailsRequest, error) {
	return &GetOrderDetailsRequest{OrderNumber: strings.TrimSpace(ctx.Param("number"))}, nil
}

func (r *GetOrderDetailsRequest) Validate() error {
	if strings.TrimSpace(r.GetOrderNumber()) == "" {
		return errors.New("order number is required")
	}
	return nil
}

func NewRefundOrderRequestFromContext(ctx echo.Context) (*RefundOrderRequest, error) {
	var body RefundOrderRequest
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	body.OrderNumber = strings.TrimSpace(ctx.Param("number"))
	body.Reason = strings.TrimSpace(body.Reason)

	return &body, nil
}

func (r *RefundOrderRequest) Validate() error {
	if strings.TrimSpace(r.GetOrderNumber()) == "" {
		return errors.New("order number is required")
	}
	if r.GetAmountMinor() < 0 {
		return errors.New("amount_minor must be >= 0")
	}
	return nil
}

// WebhookRequest is an inbound provider callback exactly as delivered.
type WebhookRequest struct {
	Provider string
	Fields   url.Values
	Header   http.Header
	Body     []byte
	RemoteIP string
}

// NewWebhookRequestFromContext keeps the raw body for signature checks and
// merges form fields with query parameters, form values taking precedence.
func NewWebhookRequestFromContext(ctx echo.Context) (*WebhookRequest, error) {
	req := ctx.Request()

	var body []byte
	if req.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(req.Body, maxWebhookBodyBytes))
		if err != nil {
			return nil, err
		}
		body = raw
	}

	fields := url.Values{}
	for key, values := range req.URL.Query() {
		fields[key] = values
	}
	if isFormContent(req.Header.Get(echo.HeaderContentType)) && len(body) > 0 {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, err
		}
		for key, values := range form {
			fields[key] = values
		}
	}

	return &WebhookRequest{
		Provider: strings.ToLower(strings.TrimSpace(ctx.Param("provider"))),
		Fields:   fields,
		Header:   req.Header.Clone(),
		Body:     body,
		RemoteIP: ctx.RealIP(),
	}, nil
}

func (r *WebhookRequest) Validate() error {
	if strings.TrimSpace(r.Provider) == "" {
		return errors.New("provider is required")
	}
	return nil
}

func isFormContent(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.HasPrefix(contentType, echo.MIMEApplicationForm)
}

func validateIdentity(customerRef, guestSessionID string) error {
	if strings.TrimSpace(customerRef) == "" && strings.TrimSpace(guestSessionID) == "" {
		return errors.New("customer_ref or guest_session_id is required")
	}
	return nil
}

func validateReturnURLs(values ...string) error {
	for _, raw := range values {
		if raw == "" {
			continue
		}
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("return urls must be absolute")
		}
	}
	return nil
}
