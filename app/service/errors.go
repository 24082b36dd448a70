package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderForbidden      = errors.New("order does not belong to requester")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrProviderUnsupported = errors.New("provider is not supported")
	ErrCartNotFound        = errors.New("cart not found")
	ErrCartForbidden       = errors.New("cart does not belong to requester")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidCart         = errors.New("cart total is invalid")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrRefundUnsupported   = errors.New("refund is not supported by provider")
	ErrRefundRejected      = errors.New("refund was rejected by provider")
	ErrStatusConflict      = errors.New("conflicting payment status transition")
)

// ProviderUnavailableError is retryable. The order it names stays pending so
// the caller can retry with the same or a different provider.
type ProviderUnavailableError struct {
	OrderNumber string
	Provider    string
	Err         error
}

func (e *ProviderUnavailableError) Error() string {
	if e.OrderNumber == "" {
		return fmt.Sprintf("%s: provider=%s", ErrProviderUnavailable.Error(), e.Provider)
	}
	return fmt.Sprintf("%s: provider=%s order=%s", ErrProviderUnavailable.Error(), e.Provider, e.OrderNumber)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Err
}

func (e *ProviderUnavailableError) Is(target error) bool {
	return target == ErrProviderUnavailable
}
