package entity

import "time"

type AttemptStatus string

const (
	AttemptStatusOpen       AttemptStatus = "open"
	AttemptStatusSuperseded AttemptStatus = "superseded"
	AttemptStatusExpired    AttemptStatus = "expired"
	AttemptStatusSettled    AttemptStatus = "settled"
)

// PaymentAttempt records one payment intent issued for an order.
type PaymentAttempt struct {
	ID uint64

	OrderID     uint64
	OrderNumber string
	Reference   string

	Provider          string
	ProviderPaymentID *string
	RedirectURL       *string
	ExpiresAt         *time.Time

	Status AttemptStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
