package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-checkout/config"
)

func TestRequireRequestID(t *testing.T) {
	e := echo.New()
	handler := requireRequestID()(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/checkout/providers", nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without x-request-id, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/checkout/providers", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec = httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderXRequestID) != "req-1" {
		t.Fatalf("expected request id echoed, got %q", rec.Header().Get(echo.HeaderXRequestID))
	}
}

func TestNewWebhookLimiter(t *testing.T) {
	if limiter := newWebhookLimiter(config.CheckoutConfig{}); limiter != nil {
		t.Fatal("expected nil limiter when rate is disabled")
	}

	limiter := newWebhookLimiter(config.CheckoutConfig{WebhookRatePerMinute: 1, WebhookRateBurst: 2})
	if !limiter.Allow("203.0.113.7") || !limiter.Allow("203.0.113.7") {
		t.Fatal("expected burst of two to be allowed")
	}
	if limiter.Allow("203.0.113.7") {
		t.Fatal("expected third call within the minute to be limited")
	}
	if !limiter.Allow("198.51.100.1") {
		t.Fatal("expected other ip to have its own bucket")
	}
}

func realIPFor(t *testing.T, extractor echo.IPExtractor, remoteAddr, forwardedFor string) string {
	t.Helper()
	e := echo.New()
	e.IPExtractor = extractor
	req := httptest.NewRequest(http.MethodPost, "/webhooks/idram", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
	}
	return e.NewContext(req, httptest.NewRecorder()).RealIP()
}

func TestIPExtractorIgnoresForwardedForWithoutTrustedProxies(t *testing.T) {
	extractor, err := newIPExtractor(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ip := realIPFor(t, extractor, "203.0.113.7:4000", "198.51.100.99"); ip != "203.0.113.7" {
		t.Fatalf("expected socket address, got %s", ip)
	}
}

func TestIPExtractorHonoursTrustedProxy(t *testing.T) {
	extractor, err := newIPExtractor([]string{"10.0.0.0/8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ip := realIPFor(t, extractor, "10.1.2.3:4000", "198.51.100.99"); ip != "198.51.100.99" {
		t.Fatalf("expected forwarded client address, got %s", ip)
	}
	if ip := realIPFor(t, extractor, "203.0.113.7:4000", "198.51.100.99"); ip != "203.0.113.7" {
		t.Fatalf("expected untrusted peer to be used as is, got %s", ip)
	}
	if ip := realIPFor(t, extractor, "127.0.0.1:4000", "198.51.100.99"); ip != "127.0.0.1" {
		t.Fatalf("expected loopback not to be trusted implicitly, got %s", ip)
	}
}

func TestIPExtractorRejectsInvalidCIDR(t *testing.T) {
	if _, err := newIPExtractor([]string{"10.0.0.0/33"}); err == nil {
		t.Fatal("expected error for invalid cidr")
	}
}
