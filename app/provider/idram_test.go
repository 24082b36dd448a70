package provider

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/signature"
)

const (
	testIdramMerchant = "110000601"
	testIdramSecret   = "idram-secret"
)

var testIdramNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestIdramProvider() *IdramProvider {
	return NewIdramProvider(IdramConfig{
		MerchantID: testIdramMerchant,
		SecretKey:  testIdramSecret,
		BaseURL:    "https://idram.example/Payment/GetPayment",
		PaymentTTL: 15 * time.Minute,
		Clock:      func() time.Time { return testIdramNow },
	})
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:            1,
		OrderNumber:   "ORD-1001",
		TotalMinor:    5000,
		Currency:      "AMD",
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func testCreateOptions() CreateOptions {
	return CreateOptions{
		Reference:  "att-1",
		SuccessURL: "https://shop.example/checkout/success",
		FailURL:    "https://shop.example/checkout/fail",
	}
}

func signedIdramCallback(secret, merchant, billNo, amount, transID, status string) *Callback {
	sig := signature.Sign(secret, merchant, billNo, amount, transID, status)
	return NewCallback(url.Values{
		"EDP_REC_ACCOUNT":  {merchant},
		"EDP_BILL_NO":      {billNo},
		"EDP_REC_AMOUNT":   {amount},
		"EDP_TRANS_ID":     {transID},
		"EDP_TRANS_STATUS": {status},
		"EDP_CHECKSUM":     {sig},
	}, nil, nil)
}

func TestIdramCreatePaymentEmbedsSignedFields(t *testing.T) {
	p := newTestIdramProvider()

	intent, err := p.CreatePayment(context.Background(), testOrder(), testCreateOptions())
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if !intent.RequiresRedirect() {
		t.Fatal("expected redirect url")
	}
	if intent.ProviderPaymentID != "ORD-1001" {
		t.Fatalf("unexpected provider payment id: %s", intent.ProviderPaymentID)
	}
	if !intent.ExpiresAt.Equal(testIdramNow.Add(15 * time.Minute)) {
		t.Fatalf("unexpected expiry: %v", intent.ExpiresAt)
	}

	redirect, err := url.Parse(intent.RedirectURL)
	if err != nil {
		t.Fatalf("redirect url is not parseable: %v", err)
	}
	if !strings.HasPrefix(intent.RedirectURL, "https://idram.example/Payment/GetPayment?") {
		t.Fatalf("unexpected redirect base: %s", intent.RedirectURL)
	}
	query := redirect.Query()
	if query.Get("EDP_BILL_NO") != "ORD-1001" {
		t.Fatalf("expected EDP_BILL_NO=ORD-1001, got %q", query.Get("EDP_BILL_NO"))
	}
	if query.Get("EDP_REC_AMOUNT") != "5000" {
		t.Fatalf("expected EDP_REC_AMOUNT=5000, got %q", query.Get("EDP_REC_AMOUNT"))
	}
	if query.Get("EDP_REC_ACCOUNT") != testIdramMerchant {
		t.Fatalf("unexpected merchant: %q", query.Get("EDP_REC_ACCOUNT"))
	}

	fields := make([]string, 0, len(idramCreationFields))
	for _, name := range idramCreationFields {
		fields = append(fields, query.Get(name))
	}
	if !signature.Verify(testIdramSecret, fields, query.Get("EDP_CHECKSUM")) {
		t.Fatal("expected creation signature to verify with the creation field list")
	}
}

func TestIdramCreatePaymentFailsFastWithoutCredentials(t *testing.T) {
	cases := []IdramConfig{
		{SecretKey: testIdramSecret},
		{MerchantID: testIdramMerchant},
		{MerchantID: testIdramMerchant, SecretKey: testIdramSecret, Sandbox: true},
	}
	for _, cfg := range cases {
		p := NewIdramProvider(cfg)
		intent, err := p.CreatePayment(context.Background(), testOrder(), testCreateOptions())
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration for %+v, got %v", cfg, err)
		}
		if intent != nil {
			t.Fatal("expected no intent when credentials are missing")
		}
		if strings.Contains(err.Error(), testIdramSecret) {
			t.Fatal("configuration error must not leak the secret")
		}
	}
}

func TestIdramCreatePaymentRequiresReturnURLs(t *testing.T) {
	p := newTestIdramProvider()
	_, err := p.CreatePayment(context.Background(), testOrder(), CreateOptions{})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestIdramVerifyWebhookAcceptsValidSignature(t *testing.T) {
	p := newTestIdramProvider()
	cb := signedIdramCallback(testIdramSecret, testIdramMerchant, "ORD-1001", "5000", "T-1", "OK")

	if !p.VerifyWebhook(cb) {
		t.Fatal("expected valid callback to verify")
	}
}

func TestIdramVerifyWebhookRejectsTamperedFields(t *testing.T) {
	p := newTestIdramProvider()

	for _, field := range []string{"EDP_REC_AMOUNT", "EDP_BILL_NO", "EDP_TRANS_ID", "EDP_TRANS_STATUS"} {
		cb := signedIdramCallback(testIdramSecret, testIdramMerchant, "ORD-1001", "5000", "T-1", "OK")
		cb.Fields[field] = cb.Fields[field] + "9"
		if p.VerifyWebhook(cb) {
			t.Fatalf("expected tampered %s to fail verification", field)
		}
	}
}

func TestIdramVerifyWebhookRejectsMissingSignature(t *testing.T) {
	p := newTestIdramProvider()
	cb := signedIdramCallback(testIdramSecret, testIdramMerchant, "ORD-1001", "5000", "T-1", "OK")
	delete(cb.Fields, "EDP_CHECKSUM")

	if p.VerifyWebhook(cb) {
		t.Fatal("expected missing signature to fail verification")
	}
	if p.VerifyWebhook(nil) {
		t.Fatal("expected nil callback to fail verification")
	}
}

func TestIdramVerifyWebhookRejectsOtherMerchantAndWrongSecret(t *testing.T) {
	p := newTestIdramProvider()

	other := signedIdramCallback(testIdramSecret, "999", "ORD-1001", "5000", "T-1", "OK")
	if p.VerifyWebhook(other) {
		t.Fatal("expected callback for another merchant to fail")
	}

	wrongSecret := signedIdramCallback("other-secret", testIdramMerchant, "ORD-1001", "5000", "T-1", "OK")
	if p.VerifyWebhook(wrongSecret) {
		t.Fatal("expected callback signed with another secret to fail")
	}
}

func TestIdramVerifyWebhookRejectsWhenUnconfigured(t *testing.T) {
	p := NewIdramProvider(IdramConfig{MerchantID: testIdramMerchant})
	cb := signedIdramCallback("", testIdramMerchant, "ORD-1001", "5000", "T-1", "OK")

	if p.VerifyWebhook(cb) {
		t.Fatal("expected callback to fail verification when the secret is not configured")
	}
}

func TestIdramProcessWebhookNormalizesStatus(t *testing.T) {
	p := newTestIdramProvider()
	cases := map[string]entity.PaymentStatus{
		"OK":        entity.PaymentStatusPaid,
		"success":   entity.PaymentStatusPaid,
		"FAILED":    entity.PaymentStatusFailed,
		"DECLINED":  entity.PaymentStatusFailed,
		"CANCELLED": entity.PaymentStatusCancelled,
		"PENDING":   entity.PaymentStatusPending,
		"REVERSED":  entity.PaymentStatusPending,
		"":          entity.PaymentStatusPending,
	}

	for raw, expected := range cases {
		cb := signedIdramCallback(testIdramSecret, testIdramMerchant, "ORD-1001", "5000", "T-1", raw)
		event, err := p.ProcessWebhook(cb)
		if err != nil {
			t.Fatalf("process webhook failed for %q: %v", raw, err)
		}
		if event.Status != expected {
			t.Fatalf("status %q: expected %s, got %s", raw, expected, event.Status)
		}
	}
}

func TestIdramProcessWebhookExtractsCorrelation(t *testing.T) {
	p := newTestIdramProvider()
	cb := signedIdramCallback(testIdramSecret, testIdramMerchant, "ORD-1001", "5000", "T-77", "OK")
	cb.Fields["EDP_PAYER_ACCOUNT"] = "payer-1"

	event, err := p.ProcessWebhook(cb)
	if err != nil {
		t.Fatalf("process webhook failed: %v", err)
	}
	if event.OrderNumber != "ORD-1001" || event.ProviderTransactionID != "T-77" {
		t.Fatalf("unexpected correlation: %+v", event)
	}
	amount, ok := event.AmountMinor()
	if !ok || amount != 5000 {
		t.Fatalf("unexpected amount: %d ok=%v", amount, ok)
	}
	if event.Metadata["payer_account"] != "payer-1" {
		t.Fatalf("expected payer metadata, got %+v", event.Metadata)
	}

	delete(cb.Fields, "EDP_BILL_NO")
	if _, err := p.ProcessWebhook(cb); !errors.Is(err, ErrMalformedCallback) {
		t.Fatalf("expected ErrMalformedCallback, got %v", err)
	}
}

func TestIdramRefundIsUnsupported(t *testing.T) {
	p := newTestIdramProvider()
	_, err := p.ProcessRefund(context.Background(), "ORD-1001", 5000)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
	}
	if errors.Is(err, ErrProviderRequest) {
		t.Fatal("unsupported refund must not look like a transient failure")
	}
}
