package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
)

const CashCode = "cash"

// CashProvider settles on delivery. Checkout completes without a redirect and
// the order stays pending until the order service records the collection.
type CashProvider struct{}

func NewCashProvider() *CashProvider {
	return &CashProvider{}
}

func (p *CashProvider) Code() string {
	return CashCode
}

func (p *CashProvider) CreatePayment(_ context.Context, order *entity.Order, _ CreateOptions) (*PaymentIntent, error) {
	if order == nil || strings.TrimSpace(order.OrderNumber) == "" {
		return nil, fmt.Errorf("%w: order number is required", ErrInvalidInput)
	}
	return &PaymentIntent{
		Provider:          CashCode,
		ProviderPaymentID: "cod-" + order.OrderNumber,
	}, nil
}

func (p *CashProvider) VerifyWebhook(*Callback) bool {
	return false
}

func (p *CashProvider) ProcessWebhook(*Callback) (*WebhookEvent, error) {
	return nil, fmt.Errorf("%w: cash payments have no callbacks", ErrUnsupportedOperation)
}

func (p *CashProvider) ProcessRefund(context.Context, string, int64) (*RefundOutcome, error) {
	return nil, fmt.Errorf("%w: cash refunds are handled in store", ErrUnsupportedOperation)
}

func (p *CashProvider) Ack() WebhookReply {
	return WebhookReply{StatusCode: http.StatusOK, ContentType: "text/plain; charset=UTF-8", Body: []byte("OK")}
}

func (p *CashProvider) Reject() WebhookReply {
	return WebhookReply{StatusCode: http.StatusBadRequest, ContentType: "text/plain; charset=UTF-8", Body: []byte("REJECTED")}
}
