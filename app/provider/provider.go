package provider

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
)

var (
	// ErrConfiguration means credentials or URLs required by the provider are
	// missing or malformed. Messages never include secret material.
	ErrConfiguration = errors.New("provider is not configured")
	// ErrUnsupportedOperation is a terminal failure; callers must not retry it.
	ErrUnsupportedOperation = errors.New("operation is not supported by provider")
	// ErrProviderRequest wraps transport failures and provider-side errors that
	// may succeed on retry.
	ErrProviderRequest = errors.New("provider request failed")
	// ErrProviderRejected means the provider refused the request itself.
	// Sending it again unchanged fails the same way.
	ErrProviderRejected  = errors.New("provider rejected request")
	ErrMalformedCallback = errors.New("malformed provider callback")
	ErrInvalidInput      = errors.New("invalid payment input")
)

type CreateOptions struct {
	// Reference identifies the payment attempt; providers that support it use
	// it as an idempotency key.
	Reference   string
	SuccessURL  string
	FailURL     string
	Description string
	Language    string
}

type PaymentIntent struct {
	Provider          string
	ProviderPaymentID string
	RedirectURL       string
	ExpiresAt         time.Time
}

func (i *PaymentIntent) RequiresRedirect() bool {
	return i != nil && strings.TrimSpace(i.RedirectURL) != ""
}

// WebhookEvent is the provider-neutral view of a verified callback.
type WebhookEvent struct {
	OrderNumber           string
	Status                entity.PaymentStatus
	RawStatus             string
	ProviderTransactionID string
	RawAmount             string
	Metadata              map[string]string

	// ProviderPaymentID matches PaymentIntent.ProviderPaymentID of the attempt
	// the callback belongs to. Empty when the provider does not report it.
	ProviderPaymentID string
}

// AmountMinor parses RawAmount as an integer amount in minor units.
func (e *WebhookEvent) AmountMinor() (int64, bool) {
	raw := strings.TrimSpace(e.RawAmount)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type RefundOutcome struct {
	RefundID    string
	Status      string
	AmountMinor int64
}

type WebhookReply struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Provider interface {
	Code() string
	CreatePayment(ctx context.Context, order *entity.Order, opts CreateOptions) (*PaymentIntent, error)
	// VerifyWebhook never fails loudly: a missing or wrong signature is false.
	VerifyWebhook(cb *Callback) bool
	// ProcessWebhook only normalizes; call it after VerifyWebhook returned true.
	ProcessWebhook(cb *Callback) (*WebhookEvent, error)
	ProcessRefund(ctx context.Context, paymentID string, amountMinor int64) (*RefundOutcome, error)
	Ack() WebhookReply
	Reject() WebhookReply
}

// SignatureReader is implemented by providers that can point at the claimed
// signature of a callback so it can be kept in the callback log.
type SignatureReader interface {
	ClaimedSignature(cb *Callback) string
}

func nowOrDefault(clock func() time.Time) time.Time {
	if clock != nil {
		return clock().UTC()
	}
	return time.Now().UTC()
}
