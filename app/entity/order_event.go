package entity

import "time"

const (
	OrderEventCreated        = "order_created"
	OrderEventStatusChanged  = "payment_status_changed"
	OrderEventStatusConflict = "payment_status_conflict"
	OrderEventAmountMismatch = "payment_amount_mismatch"
	OrderEventCallbackStale  = "payment_callback_superseded"
	OrderEventRefunded       = "payment_refunded"
	OrderEventNotified       = "notification_dispatched"
	OrderEventNotifyFailed   = "notification_dispatch_failed"
)

type OrderEvent struct {
	ID uint64

	OrderID uint64

	EventType string

	OldStatus *PaymentStatus
	NewStatus PaymentStatus

	ProviderTransactionID *string
	Payload               map[string]string

	CreatedAt time.Time
}
