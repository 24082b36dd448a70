package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) Terminal() bool {
	return s.Valid() && s != PaymentStatusPending
}

const (
	NotificationNone    int32 = 0
	NotificationPending int32 = 1
	NotificationSuccess int32 = 10
	NotificationFailed  int32 = 20
)

// Order holds the subset of the order the payment core reads and writes.
// Line items, inventory and shipping live with the order service.
type Order struct {
	ID uint64

	OrderNumber       string
	CheckoutRequestID string
	CartID            string

	CustomerRef    *string
	GuestSessionID *string
	ContactEmail   *string
	ContactPhone   *string

	TotalMinor int64
	Currency   string

	PaymentStatus     PaymentStatus
	FulfillmentStatus string

	Provider              string
	ProviderTransactionID *string

	NotificationStatus   int32
	NotificationAttempts int32
	NotificationNextAt   *time.Time
	NotificationLastErr  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the identity matches the one that placed the order.
func (o *Order) OwnedBy(customerRef, guestSessionID string) bool {
	if o.CustomerRef != nil && *o.CustomerRef != "" {
		return *o.CustomerRef == customerRef
	}
	return o.GuestSessionID != nil && *o.GuestSessionID != "" && *o.GuestSessionID == guestSessionID
}
