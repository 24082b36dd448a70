// Package cart talks to the cart service, which owns cart persistence and
// pricing. Checkout only consumes a finalized cart.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrCartNotFound  = errors.New("cart not found")
	ErrInvalidAmount = errors.New("cart total is not representable in minor units")
)

type Item struct {
	ProductID string          `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Cart struct {
	ID             string          `json:"id"`
	CustomerRef    string          `json:"customer_ref"`
	GuestSessionID string          `json:"guest_session_id"`
	Currency       string          `json:"currency"`
	Total          decimal.Decimal `json:"total"`
	Items          []Item          `json:"items"`
}

func (c *Cart) Empty() bool {
	for _, item := range c.Items {
		if item.Quantity > 0 {
			return false
		}
	}
	return true
}

// BelongsTo matches a signed-in customer by reference and a guest by session.
func (c *Cart) BelongsTo(customerRef, guestSessionID string) bool {
	customerRef = strings.TrimSpace(customerRef)
	guestSessionID = strings.TrimSpace(guestSessionID)
	if c.CustomerRef != "" {
		return customerRef != "" && c.CustomerRef == customerRef
	}
	return guestSessionID != "" && c.GuestSessionID == guestSessionID
}

func (c *Cart) TotalMinor() (int64, error) {
	return ToMinorUnits(c.Total, c.Currency)
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

var currencyExponents = map[string]int32{
	"JPY": 0, "KRW": 0, "VND": 0, "CLP": 0, "ISK": 0, "UGX": 0,
	"BHD": 3, "KWD": 3, "OMR": 3, "JOD": 3, "TND": 3,
}

// ToMinorUnits converts a decimal amount to the currency's smallest unit,
// refusing amounts with more precision than the currency allows.
func ToMinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	exponent, ok := currencyExponents[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		exponent = 2
	}
	shifted := amount.Shift(exponent)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s %s", ErrInvalidAmount, amount.String(), currency)
	}
	if !shifted.IsPositive() {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, amount.String())
	}
	if shifted.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: %s %s overflows", ErrInvalidAmount, amount.String(), currency)
	}
	return shifted.IntPart(), nil
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	if c.baseURL == "" {
		return nil, errors.New("cart service base url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/carts/"+url.PathEscape(cartID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCartNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("cart service request failed: status=%d", resp.StatusCode)
	}

	var envelope struct {
		Cart *Cart `json:"cart"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Cart == nil {
		return nil, ErrCartNotFound
	}
	envelope.Cart.Currency = strings.ToUpper(strings.TrimSpace(envelope.Cart.Currency))

	return envelope.Cart, nil
}
