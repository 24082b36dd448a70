package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/signature"
)

const IdramCode = "idram"

const (
	idramLiveBaseURL      = "https://banking.idram.am/Payment/GetPayment"
	idramDefaultTTL       = 30 * time.Minute
	idramDefaultLanguage  = "EN"
	idramFieldRecAccount  = "EDP_REC_ACCOUNT"
	idramFieldBillNo      = "EDP_BILL_NO"
	idramFieldRecAmount   = "EDP_REC_AMOUNT"
	idramFieldCurrency    = "EDP_CURRENCY"
	idramFieldSuccessURL  = "EDP_SUCCESS_URL"
	idramFieldFailURL     = "EDP_FAIL_URL"
	idramFieldLanguage    = "EDP_LANGUAGE"
	idramFieldDescription = "EDP_DESCRIPTION"
	idramFieldExpiresAt   = "EDP_EXPIRES_AT"
	idramFieldTransID     = "EDP_TRANS_ID"
	idramFieldTransStatus = "EDP_TRANS_STATUS"
	idramFieldTransDate   = "EDP_TRANS_DATE"
	idramFieldPayer       = "EDP_PAYER_ACCOUNT"
	idramFieldChecksum    = "EDP_CHECKSUM"
)

// Signed at payment creation, in this order.
var idramCreationFields = []string{
	idramFieldRecAccount,
	idramFieldBillNo,
	idramFieldRecAmount,
	idramFieldCurrency,
	idramFieldSuccessURL,
	idramFieldFailURL,
}

// Signed by Idram on callbacks, in this order.
var idramCallbackFields = []string{
	idramFieldRecAccount,
	idramFieldBillNo,
	idramFieldRecAmount,
	idramFieldTransID,
	idramFieldTransStatus,
}

var idramStatuses = map[string]entity.PaymentStatus{
	"OK":         entity.PaymentStatusPaid,
	"SUCCESS":    entity.PaymentStatusPaid,
	"FAILED":     entity.PaymentStatusFailed,
	"DECLINED":   entity.PaymentStatusFailed,
	"ERROR":      entity.PaymentStatusFailed,
	"CANCELLED":  entity.PaymentStatusCancelled,
	"CANCELED":   entity.PaymentStatusCancelled,
	"PENDING":    entity.PaymentStatusPending,
	"PROCESSING": entity.PaymentStatusPending,
}

type IdramConfig struct {
	MerchantID string
	SecretKey  string
	BaseURL    string
	Sandbox    bool
	Language   string
	PaymentTTL time.Duration
	Clock      func() time.Time
}

type IdramProvider struct {
	cfg IdramConfig
}

func NewIdramProvider(cfg IdramConfig) *IdramProvider {
	cfg.MerchantID = strings.TrimSpace(cfg.MerchantID)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" && !cfg.Sandbox {
		cfg.BaseURL = idramLiveBaseURL
	}
	if cfg.PaymentTTL <= 0 {
		cfg.PaymentTTL = idramDefaultTTL
	}
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = idramDefaultLanguage
	}
	return &IdramProvider{cfg: cfg}
}

func (p *IdramProvider) Code() string {
	return IdramCode
}

func (p *IdramProvider) CreatePayment(_ context.Context, order *entity.Order, opts CreateOptions) (*PaymentIntent, error) {
	if err := p.checkConfig(); err != nil {
		return nil, err
	}
	base, err := url.Parse(p.cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: idram base url is malformed", ErrConfiguration)
	}

	successURL := strings.TrimSpace(opts.SuccessURL)
	failURL := strings.TrimSpace(opts.FailURL)
	if successURL == "" || failURL == "" {
		return nil, fmt.Errorf("%w: idram return urls are not configured", ErrConfiguration)
	}

	if order == nil || strings.TrimSpace(order.OrderNumber) == "" {
		return nil, fmt.Errorf("%w: order number is required", ErrInvalidInput)
	}
	if order.TotalMinor <= 0 {
		return nil, fmt.Errorf("%w: order total must be positive", ErrInvalidInput)
	}

	signed := []string{
		p.cfg.MerchantID,
		order.OrderNumber,
		strconv.FormatInt(order.TotalMinor, 10),
		strings.ToUpper(strings.TrimSpace(order.Currency)),
		successURL,
		failURL,
	}

	expiresAt := nowOrDefault(p.cfg.Clock).Add(p.cfg.PaymentTTL)
	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = p.cfg.Language
	}

	query := base.Query()
	for i, name := range idramCreationFields {
		query.Set(name, signed[i])
	}
	query.Set(idramFieldChecksum, signature.Sign(p.cfg.SecretKey, signed...))
	query.Set(idramFieldLanguage, strings.ToUpper(language))
	query.Set(idramFieldExpiresAt, strconv.FormatInt(expiresAt.Unix(), 10))
	if description := strings.TrimSpace(opts.Description); description != "" {
		query.Set(idramFieldDescription, description)
	}
	base.RawQuery = query.Encode()

	return &PaymentIntent{
		Provider:          IdramCode,
		ProviderPaymentID: order.OrderNumber,
		RedirectURL:       base.String(),
		ExpiresAt:         expiresAt,
	}, nil
}

func (p *IdramProvider) VerifyWebhook(cb *Callback) bool {
	if cb == nil {
		return false
	}
	claimed := cb.Field(idramFieldChecksum)
	if claimed == "" {
		return false
	}
	if p.checkConfig() != nil {
		return false
	}
	if cb.Field(idramFieldRecAccount) != p.cfg.MerchantID {
		return false
	}

	fields := make([]string, 0, len(idramCallbackFields))
	for _, name := range idramCallbackFields {
		fields = append(fields, cb.Field(name))
	}
	return signature.Verify(p.cfg.SecretKey, fields, claimed)
}

func (p *IdramProvider) ClaimedSignature(cb *Callback) string {
	return cb.Field(idramFieldChecksum)
}

func (p *IdramProvider) ProcessWebhook(cb *Callback) (*WebhookEvent, error) {
	orderNumber := cb.Field(idramFieldBillNo)
	if orderNumber == "" {
		return nil, fmt.Errorf("%w: %s is missing", ErrMalformedCallback, idramFieldBillNo)
	}

	rawStatus := cb.Field(idramFieldTransStatus)
	status, ok := idramStatuses[strings.ToUpper(rawStatus)]
	if !ok {
		status = entity.PaymentStatusPending
	}

	metadata := map[string]string{}
	if payer := cb.Field(idramFieldPayer); payer != "" {
		metadata["payer_account"] = payer
	}
	if date := cb.Field(idramFieldTransDate); date != "" {
		metadata["transaction_date"] = date
	}

	return &WebhookEvent{
		OrderNumber:           orderNumber,
		Status:                status,
		RawStatus:             rawStatus,
		ProviderTransactionID: cb.Field(idramFieldTransID),
		RawAmount:             cb.Field(idramFieldRecAmount),
		Metadata:              metadata,
		ProviderPaymentID:     orderNumber,
	}, nil
}

func (p *IdramProvider) ProcessRefund(context.Context, string, int64) (*RefundOutcome, error) {
	return nil, fmt.Errorf("%w: idram refunds are handled manually", ErrUnsupportedOperation)
}

func (p *IdramProvider) Ack() WebhookReply {
	return WebhookReply{StatusCode: http.StatusOK, ContentType: "text/plain; charset=UTF-8", Body: []byte("OK")}
}

func (p *IdramProvider) Reject() WebhookReply {
	return WebhookReply{StatusCode: http.StatusBadRequest, ContentType: "text/plain; charset=UTF-8", Body: []byte("REJECTED")}
}

func (p *IdramProvider) checkConfig() error {
	switch {
	case p.cfg.MerchantID == "":
		return fmt.Errorf("%w: idram merchant id is missing", ErrConfiguration)
	case strings.TrimSpace(p.cfg.SecretKey) == "":
		return fmt.Errorf("%w: idram secret key is missing", ErrConfiguration)
	case p.cfg.BaseURL == "":
		return fmt.Errorf("%w: idram sandbox base url is missing", ErrConfiguration)
	}
	return nil
}
