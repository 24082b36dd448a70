package service

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/repository"
)

const maxTransitionAttempts = 3

type TransitionResult string

const (
	TransitionApplied   TransitionResult = "applied"
	TransitionDuplicate TransitionResult = "duplicate"
	TransitionConflict  TransitionResult = "conflict"
	TransitionIgnored   TransitionResult = "ignored"
)

type transitionSource int

const (
	sourceWebhook transitionSource = iota
	sourceRefund
)

// decideTransition is the payment state machine. Webhooks move pending orders
// to paid, failed or cancelled; only an explicit refund moves paid to refunded.
func decideTransition(current, next entity.PaymentStatus, source transitionSource) TransitionResult {
	if next == entity.PaymentStatusPending {
		return TransitionIgnored
	}
	if current == next {
		return TransitionDuplicate
	}

	switch source {
	case sourceRefund:
		if current == entity.PaymentStatusPaid && next == entity.PaymentStatusRefunded {
			return TransitionApplied
		}
	default:
		if current == entity.PaymentStatusPending && next != entity.PaymentStatusRefunded {
			return TransitionApplied
		}
	}
	return TransitionConflict
}

type transitionOutcome struct {
	Result   TransitionResult
	Previous entity.PaymentStatus
	Order    *entity.Order
}

// transition applies next with a conditional update keyed on the status the
// decision was made against. Losing a race reloads the order and decides
// again, so concurrent deliveries never both apply conflicting statuses.
func (s *CheckoutService) transition(
	ctx context.Context,
	order *entity.Order,
	next entity.PaymentStatus,
	transactionID *string,
	source transitionSource,
) (*transitionOutcome, error) {
	current := order
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		result := decideTransition(current.PaymentStatus, next, source)
		if result != TransitionApplied {
			return &transitionOutcome{Result: result, Previous: current.PaymentStatus, Order: current}, nil
		}

		now := s.now()
		notificationStatus, notificationNextAt := s.notificationStateFor(now)
		applied, err := s.orderRepo.UpdatePaymentStatus(ctx, repository.StatusChange{
			OrderID:               current.ID,
			From:                  current.PaymentStatus,
			To:                    next,
			ProviderTransactionID: transactionID,
			NotificationStatus:    notificationStatus,
			NotificationNextAt:    notificationNextAt,
			UpdatedAt:             now,
		})
		if err != nil {
			return nil, err
		}

		if applied {
			updated := *current
			previous := current.PaymentStatus
			updated.PaymentStatus = next
			if transactionID != nil {
				updated.ProviderTransactionID = transactionID
			}
			updated.NotificationStatus = notificationStatus
			updated.NotificationAttempts = 0
			updated.NotificationNextAt = notificationNextAt
			updated.NotificationLastErr = nil
			updated.UpdatedAt = now
			return &transitionOutcome{Result: TransitionApplied, Previous: previous, Order: &updated}, nil
		}

		reloaded, err := s.orderRepo.FindByID(ctx, current.ID)
		if err != nil {
			return nil, err
		}
		if reloaded == nil {
			return nil, ErrOrderNotFound
		}
		current = reloaded
	}

	return nil, fmt.Errorf("payment status of order %s kept changing during update", order.OrderNumber)
}

func (s *CheckoutService) closeAttemptsFor(ctx context.Context, order *entity.Order) {
	status := entity.AttemptStatusExpired
	if order.PaymentStatus == entity.PaymentStatusPaid {
		status = entity.AttemptStatusSettled
	}
	if _, err := s.attemptRepo.CloseOpen(ctx, order.ID, status, s.now()); err != nil {
		s.logger.WithError(err).WithField("order_number", order.OrderNumber).Warn("Payment attempts were not closed")
	}
}
