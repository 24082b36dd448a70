package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/types"
)

func OrderToPayment(item *entity.Order) *types.OrderPayment {
	if item == nil {
		return nil
	}

	return &types.OrderPayment{
		OrderNumber:           item.OrderNumber,
		PaymentStatus:         string(item.PaymentStatus),
		FulfillmentStatus:     item.FulfillmentStatus,
		Provider:              item.Provider,
		ProviderTransactionId: derefString(item.ProviderTransactionID),
		TotalMinor:            item.TotalMinor,
		Currency:              item.Currency,
		CreatedAt:             formatTime(item.CreatedAt),
		UpdatedAt:             formatTime(item.UpdatedAt),
	}
}

func AttemptToProto(item *entity.PaymentAttempt) *types.PaymentAttempt {
	if item == nil {
		return nil
	}

	return &types.PaymentAttempt{
		Reference:         item.Reference,
		Provider:          item.Provider,
		ProviderPaymentId: derefString(item.ProviderPaymentID),
		RedirectUrl:       derefString(item.RedirectURL),
		ExpiresAt:         formatOptionalTime(item.ExpiresAt),
		Status:            string(item.Status),
		CreatedAt:         formatTime(item.CreatedAt),
	}
}

func AttemptsToProto(items []*entity.PaymentAttempt) []*types.PaymentAttempt {
	result := make([]*types.PaymentAttempt, 0, len(items))
	for _, item := range items {
		result = append(result, AttemptToProto(item))
	}
	return result
}

func EventsToProto(items []*entity.OrderEvent) []*types.OrderEvent {
	result := make([]*types.OrderEvent, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		event := &types.OrderEvent{
			EventType:             item.EventType,
			NewStatus:             string(item.NewStatus),
			ProviderTransactionId: derefString(item.ProviderTransactionID),
			Payload:               clonePayload(item.Payload),
			CreatedAt:             formatTime(item.CreatedAt),
		}
		if item.OldStatus != nil {
			event.OldStatus = string(*item.OldStatus)
		}
		result = append(result, event)
	}
	return result
}

func CallbacksToProto(items []*entity.WebhookCallback) []*types.WebhookCallback {
	result := make([]*types.WebhookCallback, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		result = append(result, &types.WebhookCallback{
			Provider:  item.Provider,
			Status:    CallbackStatusName(item.Status),
			Error:     derefString(item.Error),
			CreatedAt: formatTime(item.CreatedAt),
		})
	}
	return result
}

// CheckoutToProto flattens the attempt's redirect fields onto the response.
func CheckoutToProto(order *entity.Order, attempt *entity.PaymentAttempt) *types.CheckoutResponse {
	resp := &types.CheckoutResponse{
		Order:   OrderToPayment(order),
		Attempt: AttemptToProto(attempt),
	}
	if attempt == nil {
		resp.Completed = order != nil && order.PaymentStatus != entity.PaymentStatusPending
		return resp
	}

	resp.RedirectUrl = derefString(attempt.RedirectURL)
	resp.ProviderPaymentId = derefString(attempt.ProviderPaymentID)
	resp.ExpiresAt = formatOptionalTime(attempt.ExpiresAt)
	resp.Completed = resp.RedirectUrl == ""
	return resp
}

func OrderToNotification(item *entity.Order) *types.OrderStatusNotification {
	if item == nil {
		return nil
	}

	return &types.OrderStatusNotification{
		OrderNumber:           item.OrderNumber,
		PaymentStatus:         string(item.PaymentStatus),
		Provider:              item.Provider,
		ProviderTransactionId: derefString(item.ProviderTransactionID),
		TotalMinor:            item.TotalMinor,
		Currency:              item.Currency,
		UpdatedAt:             formatTime(item.UpdatedAt),
	}
}

func CallbackStatusName(status int32) string {
	switch status {
	case entity.WebhookCallbackProcessed:
		return "processed"
	case entity.WebhookCallbackIgnored:
		return "ignored"
	case entity.WebhookCallbackRejected:
		return "rejected"
	case entity.WebhookCallbackConflict:
		return "conflict"
	case entity.WebhookCallbackUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func clonePayload(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
