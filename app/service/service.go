package service

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-checkout/app/cart"
	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"github.com/vibast-solutions/ms-go-checkout/app/repository"
	"github.com/vibast-solutions/ms-go-checkout/app/throttle"
	"github.com/vibast-solutions/ms-go-checkout/app/tracing"
	"github.com/vibast-solutions/ms-go-checkout/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultBatchSize       = int32(100)
	defaultProviderTimeout = 15 * time.Second
)

type orderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uint64) (*entity.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	FindByCheckoutRequestID(ctx context.Context, requestID string) (*entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, change repository.StatusChange) (bool, error)
	UpdateProvider(ctx context.Context, orderID uint64, provider string, updatedAt time.Time) (bool, error)
	UpdateNotification(ctx context.Context, order *entity.Order) error
	ListDueNotifications(ctx context.Context, now time.Time, limit int32) ([]*entity.Order, error)
}

type paymentAttemptRepository interface {
	Create(ctx context.Context, attempt *entity.PaymentAttempt) error
	FindLatestOpenByOrderID(ctx context.Context, orderID uint64) (*entity.PaymentAttempt, error)
	ListByOrderID(ctx context.Context, orderID uint64) ([]*entity.PaymentAttempt, error)
	ListExpiredOpen(ctx context.Context, now time.Time, limit int32) ([]*entity.PaymentAttempt, error)
	CloseOpen(ctx context.Context, orderID uint64, status entity.AttemptStatus, updatedAt time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id uint64, from, to entity.AttemptStatus, updatedAt time.Time) (bool, error)
}

type orderEventRepository interface {
	Create(ctx context.Context, event *entity.OrderEvent) error
	ListByOrderID(ctx context.Context, orderID uint64) ([]*entity.OrderEvent, error)
}

type webhookCallbackRepository interface {
	Create(ctx context.Context, callback *entity.WebhookCallback) error
	ListByOrderID(ctx context.Context, orderID uint64) ([]*entity.WebhookCallback, error)
}

type cartClient interface {
	GetCart(ctx context.Context, cartID string) (*cart.Cart, error)
}

// CheckoutService owns the payment status of orders: it starts payments,
// reconciles provider webhooks, issues refunds and runs the background jobs.
type CheckoutService struct {
	orderRepo    orderRepository
	attemptRepo  paymentAttemptRepository
	eventRepo    orderEventRepository
	callbackRepo webhookCallbackRepository
	providerReg  *provider.Registry
	carts        cartClient
	orderNumbers OrderNumberGenerator

	checkoutCfg      config.CheckoutConfig
	notificationsCfg config.NotificationsConfig
	appAPIKey        string
	notifyHTTP       *http.Client

	configErrLog *throttle.Limiter
	logger       logrus.FieldLogger
	tracer       trace.Tracer
	now          func() time.Time
}

func NewCheckoutService(
	orderRepo orderRepository,
	attemptRepo paymentAttemptRepository,
	eventRepo orderEventRepository,
	callbackRepo webhookCallbackRepository,
	providerReg *provider.Registry,
	carts cartClient,
	orderNumbers OrderNumberGenerator,
	checkoutCfg config.CheckoutConfig,
	notificationsCfg config.NotificationsConfig,
	appAPIKey string,
	logger logrus.FieldLogger,
) *CheckoutService {
	timeout := notificationsCfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &CheckoutService{
		orderRepo:        orderRepo,
		attemptRepo:      attemptRepo,
		eventRepo:        eventRepo,
		callbackRepo:     callbackRepo,
		providerReg:      providerReg,
		carts:            carts,
		orderNumbers:     orderNumbers,
		checkoutCfg:      checkoutCfg,
		notificationsCfg: notificationsCfg,
		appAPIKey:        strings.TrimSpace(appAPIKey),
		notifyHTTP:       &http.Client{Timeout: timeout},
		logger:           logger,
		tracer:           otel.Tracer(tracing.InstrumentationName),
		now:              func() time.Time { return time.Now().UTC() },
	}
	s.configErrLog = throttle.New(checkoutCfg.ConfigErrorLogInterval, 1, func() time.Time { return s.now() })

	return s
}

// Providers lists the provider codes a checkout may name.
func (s *CheckoutService) Providers() []string {
	return s.providerReg.Codes()
}

func (s *CheckoutService) resolveProvider(code string) (provider.Provider, error) {
	adapter, err := s.providerReg.Get(code)
	if err != nil {
		return nil, ErrProviderUnsupported
	}
	return adapter, nil
}

func (s *CheckoutService) providerTimeout() time.Duration {
	if s.checkoutCfg.ProviderTimeout > 0 {
		return s.checkoutCfg.ProviderTimeout
	}
	return defaultProviderTimeout
}

func (s *CheckoutService) batchSize() int32 {
	if s.notificationsCfg.BatchSize > 0 {
		return s.notificationsCfg.BatchSize
	}
	return defaultBatchSize
}

// notificationStateFor arms the order status notification when an order
// service endpoint is configured.
func (s *CheckoutService) notificationStateFor(now time.Time) (int32, *time.Time) {
	if strings.TrimSpace(s.notificationsCfg.URL) == "" {
		return entity.NotificationNone, nil
	}
	next := now
	return entity.NotificationPending, &next
}

func (s *CheckoutService) recordEvent(ctx context.Context, event *entity.OrderEvent) {
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.WithError(err).WithField("order_id", event.OrderID).Warn("Order event was not recorded")
	}
}

func normalizeOptionalString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// truncate cuts value to at most max bytes without splitting a rune.
func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

func keepFirstErr(current error, candidate error) error {
	if current != nil {
		return current
	}
	return candidate
}
