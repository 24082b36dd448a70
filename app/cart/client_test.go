package cart

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGetCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/carts/cart-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "checkout-key" {
			t.Errorf("expected api key header, got %q", r.Header.Get("X-API-Key"))
		}
		_, _ = w.Write([]byte(`{"cart":{"id":"cart-1","customer_ref":"user-1","currency":"amd","total":"50.00","items":[{"product_id":"p1","quantity":2,"unit_price":"25.00"}]}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "checkout-key", time.Second)
	cart, err := c.GetCart(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart.Currency != "AMD" {
		t.Fatalf("expected upper-cased currency, got %s", cart.Currency)
	}
	if cart.Empty() {
		t.Fatal("expected non-empty cart")
	}
	total, err := cart.TotalMinor()
	if err != nil || total != 5000 {
		t.Fatalf("expected 5000 minor units, got %d err=%v", total, err)
	}
}

func TestGetCartNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "", time.Second).GetCart(context.Background(), "missing")
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		expected int64
	}{
		{"50.00", "AMD", 5000},
		{"19.99", "USD", 1999},
		{"1500", "JPY", 1500},
		{"1.234", "KWD", 1234},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(decimal.RequireFromString(tc.amount), tc.currency)
		if err != nil {
			t.Fatalf("%s %s: unexpected error %v", tc.amount, tc.currency, err)
		}
		if got != tc.expected {
			t.Fatalf("%s %s: expected %d, got %d", tc.amount, tc.currency, tc.expected, got)
		}
	}

	if _, err := ToMinorUnits(decimal.RequireFromString("10.005"), "USD"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for sub-cent amount, got %v", err)
	}
	if _, err := ToMinorUnits(decimal.Zero, "USD"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero total, got %v", err)
	}
	if _, err := ToMinorUnits(decimal.RequireFromString("92233720368547758.08"), "USD"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for total beyond int64, got %v", err)
	}
	got, err := ToMinorUnits(decimal.RequireFromString("92233720368547758.07"), "USD")
	if err != nil || got != math.MaxInt64 {
		t.Fatalf("expected largest representable total, got %d %v", got, err)
	}
}

func TestBelongsTo(t *testing.T) {
	owned := &Cart{CustomerRef: "user-1"}
	if !owned.BelongsTo("user-1", "") || owned.BelongsTo("user-2", "") || owned.BelongsTo("", "sess-1") {
		t.Fatal("unexpected ownership for customer cart")
	}

	guest := &Cart{GuestSessionID: "sess-1"}
	if !guest.BelongsTo("", "sess-1") || guest.BelongsTo("", "sess-2") || guest.BelongsTo("user-1", "") {
		t.Fatal("unexpected ownership for guest cart")
	}
}
