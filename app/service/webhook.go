package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	WebhookApplied   = "applied"
	WebhookDuplicate = "duplicate"
	WebhookConflict  = "conflict"
	WebhookIgnored   = "ignored"
	WebhookUnmatched = "unmatched"
	WebhookAnomaly   = "amount_mismatch"
	WebhookMalformed = "malformed"
	WebhookRejected  = "rejected"

	WebhookSuperseded = "superseded"
)

const maxStoredPayloadBytes = 64 * 1024

// WebhookOutcome carries the reply owed to the provider. Result is for logs
// and tests only and is never sent back.
type WebhookOutcome struct {
	Reply  provider.WebhookReply
	Result string
	Order  *entity.Order
}

// HandleWebhook verifies and reconciles one provider callback. Every verified
// callback is acknowledged whatever its effect; unverified callbacks get the
// provider's rejection without any reason. Returned errors are transient and
// the provider should retry.
func (s *CheckoutService) HandleWebhook(ctx context.Context, providerCode string, cb *provider.Callback) (*WebhookOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.HandleWebhook")
	defer span.End()

	adapter, err := s.resolveProvider(providerCode)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("webhook.provider", adapter.Code()))

	l := s.logger.WithFields(logrus.Fields{
		"provider":  adapter.Code(),
		"remote_ip": cb.RemoteIP,
	})

	if !adapter.VerifyWebhook(cb) {
		l.Warn("Webhook signature verification failed")
		s.logCallback(ctx, adapter, cb, nil, "", entity.WebhookCallbackRejected, "signature verification failed")
		span.SetStatus(codes.Error, "verification failed")
		return &WebhookOutcome{Reply: adapter.Reject(), Result: WebhookRejected}, nil
	}

	event, err := adapter.ProcessWebhook(cb)
	if err != nil {
		l.WithError(err).Warn("Verified webhook could not be normalized")
		s.logCallback(ctx, adapter, cb, nil, "", entity.WebhookCallbackIgnored, err.Error())
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookMalformed}, nil
	}

	l = l.WithFields(logrus.Fields{
		"order_number": event.OrderNumber,
		"status":       string(event.Status),
		"raw_status":   event.RawStatus,
	})
	span.SetAttributes(attribute.String("webhook.order_number", event.OrderNumber))

	order, err := s.orderRepo.FindByOrderNumber(ctx, event.OrderNumber)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if order == nil {
		l.Warn("Verified webhook references an unknown order")
		s.logCallback(ctx, adapter, cb, nil, event.OrderNumber, entity.WebhookCallbackUnmatched, "order not found")
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookUnmatched}, nil
	}

	stale, err := s.supersededCallback(ctx, order, adapter.Code(), event)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if stale {
		l.WithField("current_provider", order.Provider).Warn("Webhook belongs to a superseded payment attempt")
		s.recordEvent(ctx, &entity.OrderEvent{
			OrderID:               order.ID,
			EventType:             entity.OrderEventCallbackStale,
			OldStatus:             statusPtr(order.PaymentStatus),
			NewStatus:             event.Status,
			ProviderTransactionID: normalizeOptionalString(event.ProviderTransactionID),
			Payload:               eventPayload(event, map[string]string{"provider": adapter.Code()}),
			CreatedAt:             s.now(),
		})
		s.logCallback(ctx, adapter, cb, &order.ID, order.OrderNumber, entity.WebhookCallbackIgnored, "payment attempt superseded")
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookSuperseded, Order: order}, nil
	}

	if event.Status == entity.PaymentStatusPaid {
		if amount, ok := event.AmountMinor(); ok && amount != order.TotalMinor {
			l.WithFields(logrus.Fields{
				"expected_amount": order.TotalMinor,
				"reported_amount": amount,
			}).Error("Paid webhook amount does not match order total")
			s.recordEvent(ctx, &entity.OrderEvent{
				OrderID:               order.ID,
				EventType:             entity.OrderEventAmountMismatch,
				OldStatus:             statusPtr(order.PaymentStatus),
				NewStatus:             event.Status,
				ProviderTransactionID: normalizeOptionalString(event.ProviderTransactionID),
				Payload:               eventPayload(event, map[string]string{"expected_amount": strconv.FormatInt(order.TotalMinor, 10)}),
				CreatedAt:             s.now(),
			})
			s.logCallback(ctx, adapter, cb, &order.ID, order.OrderNumber, entity.WebhookCallbackConflict, "amount mismatch")
			return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookAnomaly, Order: order}, nil
		}
	}

	outcome, err := s.transition(ctx, order, event.Status, normalizeOptionalString(event.ProviderTransactionID), sourceWebhook)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	switch outcome.Result {
	case TransitionApplied:
		l.WithField("previous_status", string(outcome.Previous)).Info("Order payment status changed")
		s.recordEvent(ctx, &entity.OrderEvent{
			OrderID:               order.ID,
			EventType:             entity.OrderEventStatusChanged,
			OldStatus:             statusPtr(outcome.Previous),
			NewStatus:             outcome.Order.PaymentStatus,
			ProviderTransactionID: normalizeOptionalString(event.ProviderTransactionID),
			Payload:               eventPayload(event, nil),
			CreatedAt:             s.now(),
		})
		s.closeAttemptsFor(ctx, outcome.Order)
		s.logCallback(ctx, adapter, cb, &order.ID, order.OrderNumber, entity.WebhookCallbackProcessed, "")
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookApplied, Order: outcome.Order}, nil

	case TransitionDuplicate:
		l.Debug("Webhook repeats the current payment status")
		s.logCallback(ctx, adapter, cb, &order.ID, order.OrderNumber, entity.WebhookCallbackProcessed, "")
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookDuplicate, Order: outcome.Order}, nil

	case TransitionConflict:
		l.WithField("current_status", string(outcome.Previous)).Error("Webhook conflicts with terminal payment status")
		s.recordEvent(ctx, &entity.OrderEvent{
			OrderID:               order.ID,
			EventType:             entity.OrderEventStatusConflict,
			OldStatus:             statusPtr(outcome.Previous),
			NewStatus:             event.Status,
			ProviderTransactionID: normalizeOptionalString(event.ProviderTransactionID),
			Payload:               eventPayload(event, nil),
			CreatedAt:             s.now(),
		})
		s.logCallback(ctx, adapter, cb, &order.ID, order.OrderNumber, entity.WebhookCallbackConflict, ErrStatusConflict.Error())
		span.SetStatus(codes.Error, "status conflict")
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookConflict, Order: outcome.Order}, nil

	default:
		l.Debug("Webhook carries a non-final status")
		s.logCallback(ctx, adapter, cb, &order.ID, order.OrderNumber, entity.WebhookCallbackIgnored, "")
		return &WebhookOutcome{Reply: adapter.Ack(), Result: WebhookIgnored, Order: outcome.Order}, nil
	}
}

// supersededCallback reports whether a failure callback was issued for an
// attempt the buyer already replaced. Paid callbacks always count: the money
// moved and the order must reflect it.
func (s *CheckoutService) supersededCallback(ctx context.Context, order *entity.Order, providerCode string, event *provider.WebhookEvent) (bool, error) {
	if event.Status != entity.PaymentStatusFailed && event.Status != entity.PaymentStatusCancelled {
		return false, nil
	}
	if !strings.EqualFold(order.Provider, providerCode) {
		return true, nil
	}
	if event.ProviderPaymentID == "" {
		return false, nil
	}

	attempt, err := s.attemptRepo.FindLatestOpenByOrderID(ctx, order.ID)
	if err != nil {
		return false, err
	}
	if attempt == nil || attempt.ProviderPaymentID == nil || *attempt.ProviderPaymentID == "" {
		return false, nil
	}
	return *attempt.ProviderPaymentID != event.ProviderPaymentID, nil
}

// logCallback keeps the raw callback for audit. A failure here never changes
// the reply since the order state is already settled.
func (s *CheckoutService) logCallback(
	ctx context.Context,
	adapter provider.Provider,
	cb *provider.Callback,
	orderID *uint64,
	orderNumber string,
	status int32,
	reason string,
) {
	now := s.now()
	record := &entity.WebhookCallback{
		OrderID:     orderID,
		Provider:    adapter.Code(),
		OrderNumber: orderNumber,
		Signature:   claimedSignature(adapter, cb),
		Payload:     truncate(rawPayload(cb), maxStoredPayloadBytes),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		trimmed := truncate(reason, 1024)
		record.Error = &trimmed
	}

	if err := s.callbackRepo.Create(ctx, record); err != nil {
		s.logger.WithError(err).WithField("provider", adapter.Code()).Warn("Webhook callback was not logged")
	}
}

func claimedSignature(adapter provider.Provider, cb *provider.Callback) string {
	reader, ok := adapter.(provider.SignatureReader)
	if !ok {
		return ""
	}
	return truncate(reader.ClaimedSignature(cb), 512)
}

func rawPayload(cb *provider.Callback) string {
	if cb == nil {
		return ""
	}
	if len(cb.Body) > 0 {
		return string(cb.Body)
	}
	values := url.Values{}
	for key, value := range cb.Fields {
		values.Set(key, value)
	}
	return values.Encode()
}

func eventPayload(event *provider.WebhookEvent, extra map[string]string) map[string]string {
	payload := map[string]string{"raw_status": event.RawStatus}
	if event.RawAmount != "" {
		payload["amount"] = event.RawAmount
	}
	for k, v := range event.Metadata {
		payload[k] = v
	}
	for k, v := range extra {
		payload[k] = v
	}
	return payload
}

func statusPtr(status entity.PaymentStatus) *entity.PaymentStatus {
	return &status
}
