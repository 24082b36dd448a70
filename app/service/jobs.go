package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/mapper"
)

// RunDispatchNotificationsBatch posts the payment status of orders with a due
// notification to the order service.
func (s *CheckoutService) RunDispatchNotificationsBatch(ctx context.Context) error {
	now := s.now()
	items, err := s.orderRepo.ListDueNotifications(ctx, now, s.batchSize())
	if err != nil {
		return err
	}

	var firstErr error
	for _, order := range items {
		if order == nil {
			continue
		}
		if err := s.dispatchNotification(ctx, order, now); err != nil {
			firstErr = keepFirstErr(firstErr, err)
		}
	}

	return firstErr
}

// RunExpireAttemptsBatch closes open attempts whose redirect has expired. The
// order itself stays pending: only a provider callback settles it.
func (s *CheckoutService) RunExpireAttemptsBatch(ctx context.Context) error {
	now := s.now()
	items, err := s.attemptRepo.ListExpiredOpen(ctx, now, s.batchSize())
	if err != nil {
		return err
	}

	var firstErr error
	for _, attempt := range items {
		if attempt == nil {
			continue
		}
		if _, err := s.attemptRepo.UpdateStatus(ctx, attempt.ID, entity.AttemptStatusOpen, entity.AttemptStatusExpired, now); err != nil {
			firstErr = keepFirstErr(firstErr, err)
		}
	}

	return firstErr
}

func (s *CheckoutService) dispatchNotification(ctx context.Context, order *entity.Order, now time.Time) error {
	target := strings.TrimSpace(s.notificationsCfg.URL)
	if target == "" {
		errMsg := "order status callback url is empty"
		order.NotificationStatus = entity.NotificationFailed
		order.NotificationNextAt = nil
		order.NotificationLastErr = &errMsg
		order.UpdatedAt = now
		return s.orderRepo.UpdateNotification(ctx, order)
	}

	body, err := json.Marshal(mapper.OrderToNotification(order))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return s.recordDispatchFailure(ctx, order, now, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", order.OrderNumber)
	if s.appAPIKey != "" {
		req.Header.Set("X-API-Key", s.appAPIKey)
	}

	resp, err := s.notifyHTTP.Do(req)
	if err != nil {
		return s.recordDispatchFailure(ctx, order, now, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return s.recordDispatchFailure(ctx, order, now, fmt.Errorf("order service returned status=%d", resp.StatusCode))
	}

	order.NotificationStatus = entity.NotificationSuccess
	order.NotificationNextAt = nil
	order.NotificationLastErr = nil
	order.UpdatedAt = now

	if err := s.orderRepo.UpdateNotification(ctx, order); err != nil {
		return err
	}

	s.recordEvent(ctx, &entity.OrderEvent{
		OrderID:   order.ID,
		EventType: entity.OrderEventNotified,
		NewStatus: order.PaymentStatus,
		CreatedAt: now,
	})

	return nil
}

func (s *CheckoutService) recordDispatchFailure(ctx context.Context, order *entity.Order, now time.Time, dispatchErr error) error {
	order.NotificationAttempts++
	trimmed := truncate(dispatchErr.Error(), 1024)
	order.NotificationLastErr = &trimmed

	maxAttempts := s.notificationsCfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	if order.NotificationAttempts >= maxAttempts {
		order.NotificationStatus = entity.NotificationFailed
		order.NotificationNextAt = nil
		s.logger.WithError(dispatchErr).WithField("order_number", order.OrderNumber).Error("Order status notification gave up")
	} else {
		retryInterval := s.notificationsCfg.RetryInterval
		if retryInterval <= 0 {
			retryInterval = 5 * time.Minute
		}
		next := now.Add(retryInterval)
		order.NotificationStatus = entity.NotificationPending
		order.NotificationNextAt = &next
	}
	order.UpdatedAt = now

	if err := s.orderRepo.UpdateNotification(ctx, order); err != nil {
		return err
	}

	s.recordEvent(ctx, &entity.OrderEvent{
		OrderID:   order.ID,
		EventType: entity.OrderEventNotifyFailed,
		NewStatus: order.PaymentStatus,
		Payload:   map[string]string{"error": trimmed},
		CreatedAt: now,
	})

	return dispatchErr
}
