package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type refundRequest interface {
	GetOrderNumber() string
	GetAmountMinor() int64
	GetReason() string
}

type RefundResult struct {
	Order   *entity.Order
	Outcome *provider.RefundOutcome
}

// RefundOrder refunds a paid order through the provider that collected the
// payment. A zero amount refunds the full total.
func (s *CheckoutService) RefundOrder(ctx context.Context, req refundRequest) (*RefundResult, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.RefundOrder")
	defer span.End()

	orderNumber := strings.TrimSpace(req.GetOrderNumber())
	if orderNumber == "" || req.GetAmountMinor() < 0 {
		return nil, ErrInvalidRequest
	}
	span.SetAttributes(attribute.String("refund.order_number", orderNumber))

	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.PaymentStatus != entity.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: order payment is %s", ErrInvalidStatus, order.PaymentStatus)
	}

	amount := req.GetAmountMinor()
	if amount == 0 {
		amount = order.TotalMinor
	}
	if amount > order.TotalMinor {
		return nil, fmt.Errorf("%w: refund exceeds order total", ErrInvalidRequest)
	}

	adapter, err := s.resolveProvider(order.Provider)
	if err != nil {
		return nil, err
	}

	paymentID := ""
	if order.ProviderTransactionID != nil {
		paymentID = *order.ProviderTransactionID
	}

	l := s.logger.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"provider":     adapter.Code(),
		"amount":       amount,
	})

	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout())
	outcome, err := adapter.ProcessRefund(providerCtx, paymentID, amount)
	cancel()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refund failed")
		switch {
		case errors.Is(err, provider.ErrUnsupportedOperation):
			l.WithError(err).Info("Provider does not support refunds")
			return nil, fmt.Errorf("%w: %v", ErrRefundUnsupported, err)
		case errors.Is(err, provider.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		case errors.Is(err, provider.ErrProviderRejected):
			l.WithError(err).Warn("Provider rejected refund")
			return nil, fmt.Errorf("%w: %v", ErrRefundRejected, err)
		default:
			return nil, s.providerUnavailable(order, adapter.Code(), err)
		}
	}

	result, err := s.transition(ctx, order, entity.PaymentStatusRefunded, nil, sourceRefund)
	if err != nil {
		return nil, err
	}
	if result.Result != TransitionApplied {
		// The provider refunded but the order moved on meanwhile.
		l.WithField("current_status", string(result.Previous)).Error("Refund issued for an order that is no longer paid")
		return nil, fmt.Errorf("%w: order payment is %s", ErrStatusConflict, result.Previous)
	}

	payload := map[string]string{
		"refund_id":     outcome.RefundID,
		"refund_status": outcome.Status,
		"amount":        strconv.FormatInt(amount, 10),
	}
	if reason := strings.TrimSpace(req.GetReason()); reason != "" {
		payload["reason"] = truncate(reason, 255)
	}
	s.recordEvent(ctx, &entity.OrderEvent{
		OrderID:   order.ID,
		EventType: entity.OrderEventRefunded,
		OldStatus: statusPtr(result.Previous),
		NewStatus: entity.PaymentStatusRefunded,
		Payload:   payload,
		CreatedAt: s.now(),
	})
	l.WithField("refund_id", outcome.RefundID).Info("Order refunded")

	if outcome.AmountMinor == 0 {
		outcome.AmountMinor = amount
	}
	return &RefundResult{Order: result.Order, Outcome: outcome}, nil
}
