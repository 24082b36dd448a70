package provider

import (
	"context"
	"errors"
	"net/url"
	"testing"
)

func TestCashCreatePaymentCompletesWithoutRedirect(t *testing.T) {
	p := NewCashProvider()
	intent, err := p.CreatePayment(context.Background(), testOrder(), CreateOptions{})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if intent.RequiresRedirect() {
		t.Fatalf("expected no redirect, got %s", intent.RedirectURL)
	}
}

func TestCashRejectsCallbacksAndRefunds(t *testing.T) {
	p := NewCashProvider()
	if p.VerifyWebhook(NewCallback(url.Values{"EDP_BILL_NO": {"ORD-1"}}, nil, nil)) {
		t.Fatal("expected cash callbacks to never verify")
	}
	if _, err := p.ProcessRefund(context.Background(), "cod-ORD-1", 100); !errors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
	}
}
