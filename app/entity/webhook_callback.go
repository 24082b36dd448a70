package entity

import "time"

const (
	WebhookCallbackProcessed int32 = 10
	WebhookCallbackIgnored   int32 = 11
	WebhookCallbackRejected  int32 = 20
	WebhookCallbackConflict  int32 = 30
	WebhookCallbackUnmatched int32 = 40
)

type WebhookCallback struct {
	ID uint64

	OrderID *uint64

	Provider    string
	OrderNumber string
	Signature   string
	Payload     string
	Status      int32
	Error       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
