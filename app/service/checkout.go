package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-checkout/app/cart"
	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"github.com/vibast-solutions/ms-go-checkout/app/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type checkoutRequest interface {
	GetRequestId() string
	GetCartId() string
	GetProvider() string
	GetCustomerRef() string
	GetGuestSessionId() string
	GetContactEmail() string
	GetContactPhone() string
	GetSuccessUrl() string
	GetFailUrl() string
	GetLanguage() string
}

type retryPaymentRequest interface {
	GetOrderNumber() string
	GetProvider() string
	GetCustomerRef() string
	GetGuestSessionId() string
	GetSuccessUrl() string
	GetFailUrl() string
	GetLanguage() string
}

type orderLookupRequest interface {
	GetOrderNumber() string
	GetCustomerRef() string
	GetGuestSessionId() string
}

type returnOptions struct {
	successURL string
	failURL    string
	language   string
}

// CheckoutResult is the order and the attempt the client should act on. A
// nil attempt or one without redirect URL means nothing more to do.
type CheckoutResult struct {
	Order   *entity.Order
	Attempt *entity.PaymentAttempt
}

type OrderDetails struct {
	Order     *entity.Order
	Attempts  []*entity.PaymentAttempt
	Events    []*entity.OrderEvent
	Callbacks []*entity.WebhookCallback
}

// Checkout turns a finalized cart into a pending order and a payment attempt
// with the chosen provider. Replaying a request id returns the same order.
func (s *CheckoutService) Checkout(ctx context.Context, req checkoutRequest) (*CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.Checkout")
	defer span.End()

	requestID := strings.TrimSpace(req.GetRequestId())
	cartID := strings.TrimSpace(req.GetCartId())
	customerRef := strings.TrimSpace(req.GetCustomerRef())
	guestSessionID := strings.TrimSpace(req.GetGuestSessionId())
	if requestID == "" || cartID == "" || (customerRef == "" && guestSessionID == "") {
		return nil, ErrInvalidRequest
	}
	span.SetAttributes(
		attribute.String("checkout.provider", req.GetProvider()),
		attribute.String("checkout.cart_id", cartID),
	)

	existing, err := s.orderRepo.FindByCheckoutRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := matchesReplay(existing, cartID, customerRef, guestSessionID); err != nil {
			return nil, err
		}
		return s.replayCheckout(ctx, existing, optionsFrom(req))
	}

	adapter, err := s.resolveProvider(req.GetProvider())
	if err != nil {
		return nil, err
	}

	finalized, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if !finalized.BelongsTo(customerRef, guestSessionID) {
		return nil, ErrCartForbidden
	}
	if finalized.Empty() {
		return nil, ErrCartEmpty
	}
	totalMinor, err := finalized.TotalMinor()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}

	now := s.now()
	order := &entity.Order{
		OrderNumber:        s.orderNumbers.Next(),
		CheckoutRequestID:  requestID,
		CartID:             cartID,
		CustomerRef:        normalizeOptionalString(customerRef),
		GuestSessionID:     normalizeOptionalString(guestSessionID),
		ContactEmail:       normalizeOptionalString(req.GetContactEmail()),
		ContactPhone:       normalizeOptionalString(req.GetContactPhone()),
		TotalMinor:         totalMinor,
		Currency:           finalized.Currency,
		PaymentStatus:      entity.PaymentStatusPending,
		Provider:           adapter.Code(),
		NotificationStatus: entity.NotificationNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderAlreadyExists) {
			raced, findErr := s.orderRepo.FindByCheckoutRequestID(ctx, requestID)
			if findErr != nil {
				return nil, findErr
			}
			if raced != nil {
				if err := matchesReplay(raced, cartID, customerRef, guestSessionID); err != nil {
					return nil, err
				}
				return s.replayCheckout(ctx, raced, optionsFrom(req))
			}
		}
		return nil, err
	}
	span.SetAttributes(attribute.String("checkout.order_number", order.OrderNumber))

	s.recordEvent(ctx, &entity.OrderEvent{
		OrderID:   order.ID,
		EventType: entity.OrderEventCreated,
		NewStatus: order.PaymentStatus,
		Payload:   map[string]string{"cart_id": cartID, "provider": order.Provider},
		CreatedAt: now,
	})

	result, err := s.startAttempt(ctx, order, adapter, optionsFrom(req))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "payment attempt failed")
		return nil, err
	}
	return result, nil
}

// RetryPayment issues a new payment attempt for an order that is still
// pending, optionally with a different provider.
func (s *CheckoutService) RetryPayment(ctx context.Context, req retryPaymentRequest) (*CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.RetryPayment")
	defer span.End()

	order, err := s.findOwnedOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus != entity.PaymentStatusPending {
		return nil, fmt.Errorf("%w: order payment is %s", ErrInvalidStatus, order.PaymentStatus)
	}

	code := strings.TrimSpace(req.GetProvider())
	if code == "" {
		code = order.Provider
	}
	adapter, err := s.resolveProvider(code)
	if err != nil {
		return nil, err
	}

	if adapter.Code() != order.Provider {
		switched, err := s.orderRepo.UpdateProvider(ctx, order.ID, adapter.Code(), s.now())
		if err != nil {
			return nil, err
		}
		if !switched {
			return nil, fmt.Errorf("%w: order is no longer pending", ErrInvalidStatus)
		}
		order.Provider = adapter.Code()
	}

	return s.startAttempt(ctx, order, adapter, returnOptions{
		successURL: req.GetSuccessUrl(),
		failURL:    req.GetFailUrl(),
		language:   req.GetLanguage(),
	})
}

// GetOrderPayment returns the order payment status and the open attempt, if any.
func (s *CheckoutService) GetOrderPayment(ctx context.Context, req orderLookupRequest) (*CheckoutResult, error) {
	order, err := s.findOwnedOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	attempt, err := s.attemptRepo.FindLatestOpenByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Order: order, Attempt: attempt}, nil
}

func (s *CheckoutService) GetOrderDetails(ctx context.Context, orderNumber string) (*OrderDetails, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	attempts, err := s.attemptRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	callbacks, err := s.callbackRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &OrderDetails{Order: order, Attempts: attempts, Events: events, Callbacks: callbacks}, nil
}

func (s *CheckoutService) replayCheckout(ctx context.Context, order *entity.Order, opts returnOptions) (*CheckoutResult, error) {
	if order.PaymentStatus != entity.PaymentStatusPending {
		return &CheckoutResult{Order: order}, nil
	}

	attempt, err := s.attemptRepo.FindLatestOpenByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if attempt != nil {
		return &CheckoutResult{Order: order, Attempt: attempt}, nil
	}

	// The first attempt never reached the provider; try again with the
	// provider the order was created for.
	adapter, err := s.resolveProvider(order.Provider)
	if err != nil {
		return nil, err
	}
	return s.startAttempt(ctx, order, adapter, opts)
}

func (s *CheckoutService) startAttempt(ctx context.Context, order *entity.Order, adapter provider.Provider, opts returnOptions) (*CheckoutResult, error) {
	successURL := strings.TrimSpace(opts.successURL)
	if successURL == "" {
		successURL = s.checkoutCfg.SuccessURL
	}
	failURL := strings.TrimSpace(opts.failURL)
	if failURL == "" {
		failURL = s.checkoutCfg.FailURL
	}
	language := strings.TrimSpace(opts.language)
	if language == "" {
		language = s.checkoutCfg.Language
	}

	reference := uuid.NewString()
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout())
	intent, err := adapter.CreatePayment(providerCtx, order, provider.CreateOptions{
		Reference:   reference,
		SuccessURL:  successURL,
		FailURL:     failURL,
		Description: "Order " + order.OrderNumber,
		Language:    language,
	})
	cancel()
	if err != nil {
		return nil, s.providerUnavailable(order, adapter.Code(), err)
	}

	now := s.now()
	if _, err := s.attemptRepo.CloseOpen(ctx, order.ID, entity.AttemptStatusSuperseded, now); err != nil {
		return nil, err
	}

	attempt := &entity.PaymentAttempt{
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		Reference:         reference,
		Provider:          adapter.Code(),
		ProviderPaymentID: normalizeOptionalString(intent.ProviderPaymentID),
		Status:            entity.AttemptStatusOpen,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if intent.RequiresRedirect() {
		redirectURL := intent.RedirectURL
		attempt.RedirectURL = &redirectURL

		expiresAt := intent.ExpiresAt
		if expiresAt.IsZero() && s.checkoutCfg.AttemptTTL > 0 {
			expiresAt = now.Add(s.checkoutCfg.AttemptTTL)
		}
		if !expiresAt.IsZero() {
			attempt.ExpiresAt = &expiresAt
		}
	}

	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, err
	}

	return &CheckoutResult{Order: order, Attempt: attempt}, nil
}

// providerUnavailable logs configuration errors at most once per provider
// per interval and never includes credentials.
func (s *CheckoutService) providerUnavailable(order *entity.Order, code string, err error) error {
	l := s.logger.WithFields(logrus.Fields{
		"provider":     code,
		"order_number": order.OrderNumber,
	})

	switch {
	case errors.Is(err, provider.ErrConfiguration):
		if s.configErrLog.Allow("config:" + code) {
			l.WithError(err).Error("Payment provider is misconfigured")
		}
	case errors.Is(err, provider.ErrUnsupportedOperation):
		l.WithError(err).Warn("Payment provider cannot create payments")
	case errors.Is(err, provider.ErrProviderRejected):
		l.WithError(err).Error("Payment provider rejected the payment request")
	default:
		l.WithError(err).Warn("Payment provider request failed")
	}

	return &ProviderUnavailableError{OrderNumber: order.OrderNumber, Provider: code, Err: err}
}

func (s *CheckoutService) findOwnedOrder(ctx context.Context, req orderLookupRequest) (*entity.Order, error) {
	orderNumber := strings.TrimSpace(req.GetOrderNumber())
	if orderNumber == "" {
		return nil, ErrInvalidRequest
	}

	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.OwnedBy(strings.TrimSpace(req.GetCustomerRef()), strings.TrimSpace(req.GetGuestSessionId())) {
		return nil, ErrOrderForbidden
	}
	return order, nil
}

// matchesReplay guards a reused request id: only the buyer who created the
// order may replay it, and only for the same cart.
func matchesReplay(order *entity.Order, cartID, customerRef, guestSessionID string) error {
	if !order.OwnedBy(customerRef, guestSessionID) {
		return ErrOrderForbidden
	}
	if order.CartID != cartID {
		return fmt.Errorf("%w: request id was used for another cart", ErrInvalidRequest)
	}
	return nil
}

func optionsFrom(req checkoutRequest) returnOptions {
	return returnOptions{
		successURL: req.GetSuccessUrl(),
		failURL:    req.GetFailUrl(),
		language:   req.GetLanguage(),
	}
}
