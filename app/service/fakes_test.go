package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/vibast-solutions/ms-go-checkout/app/cart"
	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"github.com/vibast-solutions/ms-go-checkout/app/repository"
	"github.com/vibast-solutions/ms-go-checkout/config"
)

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type serviceOrderRepo struct {
	mu     sync.Mutex
	orders map[uint64]*entity.Order
	nextID uint64

	// casMisses counts conditional updates that lost against a newer status.
	casMisses int
}

func newServiceOrderRepo() *serviceOrderRepo {
	return &serviceOrderRepo{orders: map[uint64]*entity.Order{}, nextID: 1}
}

func (r *serviceOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.orders {
		if item.CheckoutRequestID == order.CheckoutRequestID || item.OrderNumber == order.OrderNumber {
			return repository.ErrOrderAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	copyItem := *order
	copyItem.ID = id
	r.orders[id] = &copyItem
	order.ID = id
	return nil
}

func (r *serviceOrderRepo) put(order *entity.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copyItem := *order
	r.orders[order.ID] = &copyItem
	if order.ID >= r.nextID {
		r.nextID = order.ID + 1
	}
}

func (r *serviceOrderRepo) get(id uint64) *entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.orders[id]
	if !ok {
		return nil
	}
	copyItem := *item
	return &copyItem
}

func (r *serviceOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *serviceOrderRepo) FindByID(_ context.Context, id uint64) (*entity.Order, error) {
	return r.get(id), nil
}

func (r *serviceOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.orders {
		if item.OrderNumber == orderNumber {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *serviceOrderRepo) FindByCheckoutRequestID(_ context.Context, requestID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.orders {
		if item.CheckoutRequestID == requestID {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *serviceOrderRepo) UpdatePaymentStatus(_ context.Context, change repository.StatusChange) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.orders[change.OrderID]
	if !ok {
		return false, repository.ErrOrderNotFound
	}
	if item.PaymentStatus != change.From {
		r.casMisses++
		return false, nil
	}
	item.PaymentStatus = change.To
	if change.ProviderTransactionID != nil {
		txID := *change.ProviderTransactionID
		item.ProviderTransactionID = &txID
	}
	item.NotificationStatus = change.NotificationStatus
	item.NotificationAttempts = 0
	item.NotificationNextAt = change.NotificationNextAt
	item.NotificationLastErr = nil
	item.UpdatedAt = change.UpdatedAt
	return true, nil
}

func (r *serviceOrderRepo) UpdateProvider(_ context.Context, orderID uint64, code string, updatedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.orders[orderID]
	if !ok || item.PaymentStatus != entity.PaymentStatusPending {
		return false, nil
	}
	item.Provider = code
	item.UpdatedAt = updatedAt
	return true, nil
}

func (r *serviceOrderRepo) UpdateNotification(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.orders[order.ID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	item.NotificationStatus = order.NotificationStatus
	item.NotificationAttempts = order.NotificationAttempts
	item.NotificationNextAt = order.NotificationNextAt
	item.NotificationLastErr = order.NotificationLastErr
	item.UpdatedAt = order.UpdatedAt
	return nil
}

func (r *serviceOrderRepo) ListDueNotifications(_ context.Context, now time.Time, limit int32) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*entity.Order, 0)
	for _, item := range r.orders {
		if item.NotificationStatus == entity.NotificationPending && item.NotificationNextAt != nil && !item.NotificationNextAt.After(now) {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}

type serviceAttemptRepo struct {
	mu       sync.Mutex
	attempts []*entity.PaymentAttempt
}

func (r *serviceAttemptRepo) Create(_ context.Context, attempt *entity.PaymentAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempt.ID = uint64(len(r.attempts) + 1)
	copyItem := *attempt
	r.attempts = append(r.attempts, &copyItem)
	return nil
}

func (r *serviceAttemptRepo) FindLatestOpenByOrderID(_ context.Context, orderID uint64) (*entity.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.attempts) - 1; i >= 0; i-- {
		item := r.attempts[i]
		if item.OrderID == orderID && item.Status == entity.AttemptStatusOpen {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *serviceAttemptRepo) ListByOrderID(_ context.Context, orderID uint64) ([]*entity.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*entity.PaymentAttempt, 0)
	for _, item := range r.attempts {
		if item.OrderID == orderID {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	return items, nil
}

func (r *serviceAttemptRepo) ListExpiredOpen(_ context.Context, now time.Time, limit int32) ([]*entity.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*entity.PaymentAttempt, 0)
	for _, item := range r.attempts {
		if item.Status == entity.AttemptStatusOpen && item.ExpiresAt != nil && item.ExpiresAt.Before(now) {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	if limit > 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *serviceAttemptRepo) CloseOpen(_ context.Context, orderID uint64, status entity.AttemptStatus, updatedAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var closed int64
	for _, item := range r.attempts {
		if item.OrderID == orderID && item.Status == entity.AttemptStatusOpen {
			item.Status = status
			item.UpdatedAt = updatedAt
			closed++
		}
	}
	return closed, nil
}

func (r *serviceAttemptRepo) UpdateStatus(_ context.Context, id uint64, from, to entity.AttemptStatus, updatedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.attempts {
		if item.ID == id && item.Status == from {
			item.Status = to
			item.UpdatedAt = updatedAt
			return true, nil
		}
	}
	return false, nil
}

func (r *serviceAttemptRepo) byStatus(status entity.AttemptStatus) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, item := range r.attempts {
		if item.Status == status {
			n++
		}
	}
	return n
}

type serviceEventRepo struct {
	mu     sync.Mutex
	events []*entity.OrderEvent
}

func (r *serviceEventRepo) Create(_ context.Context, event *entity.OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copyItem := *event
	r.events = append(r.events, &copyItem)
	return nil
}

func (r *serviceEventRepo) ListByOrderID(_ context.Context, orderID uint64) ([]*entity.OrderEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*entity.OrderEvent, 0)
	for _, item := range r.events {
		if item.OrderID == orderID {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	return items, nil
}

func (r *serviceEventRepo) ofType(eventType string) []*entity.OrderEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*entity.OrderEvent, 0)
	for _, item := range r.events {
		if item.EventType == eventType {
			items = append(items, item)
		}
	}
	return items
}

type serviceCallbackRepo struct {
	mu        sync.Mutex
	callbacks []*entity.WebhookCallback
}

func (r *serviceCallbackRepo) Create(_ context.Context, callback *entity.WebhookCallback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copyItem := *callback
	r.callbacks = append(r.callbacks, &copyItem)
	return nil
}

func (r *serviceCallbackRepo) ListByOrderID(_ context.Context, orderID uint64) ([]*entity.WebhookCallback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]*entity.WebhookCallback, 0)
	for _, item := range r.callbacks {
		if item.OrderID != nil && *item.OrderID == orderID {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	return items, nil
}

func (r *serviceCallbackRepo) last() *entity.WebhookCallback {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.callbacks) == 0 {
		return nil
	}
	return r.callbacks[len(r.callbacks)-1]
}

type serviceCartClient struct {
	carts map[string]*cart.Cart
	err   error
}

func (c *serviceCartClient) GetCart(_ context.Context, cartID string) (*cart.Cart, error) {
	if c.err != nil {
		return nil, c.err
	}
	item, ok := c.carts[cartID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return item, nil
}

func testCart(id, customerRef string, total string) *cart.Cart {
	return &cart.Cart{
		ID:          id,
		CustomerRef: customerRef,
		Currency:    "AMD",
		Total:       decimal.RequireFromString(total),
		Items: []cart.Item{
			{ProductID: "sku-1", Quantity: 1, UnitPrice: decimal.RequireFromString(total)},
		},
	}
}

type sequentialOrderNumbers struct {
	mu   sync.Mutex
	next int
}

func (g *sequentialOrderNumbers) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("ORD-%d", 1000+g.next)
}

// stubProvider is a provider whose behaviour each test sets directly.
type stubProvider struct {
	code        string
	createErr   error
	createCalls int
	verified    bool
	event       *provider.WebhookEvent
	eventErr    error
	refund      *provider.RefundOutcome
	refundErr   error
	refundCalls int
}

func (p *stubProvider) Code() string {
	return p.code
}

func (p *stubProvider) CreatePayment(_ context.Context, order *entity.Order, opts provider.CreateOptions) (*provider.PaymentIntent, error) {
	p.createCalls++
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &provider.PaymentIntent{
		Provider:          p.code,
		ProviderPaymentID: "pay-" + opts.Reference,
		RedirectURL:       "https://pay.example/" + order.OrderNumber,
	}, nil
}

func (p *stubProvider) VerifyWebhook(*provider.Callback) bool {
	return p.verified
}

func (p *stubProvider) ProcessWebhook(*provider.Callback) (*provider.WebhookEvent, error) {
	if p.eventErr != nil {
		return nil, p.eventErr
	}
	return p.event, nil
}

func (p *stubProvider) ProcessRefund(_ context.Context, paymentID string, amountMinor int64) (*provider.RefundOutcome, error) {
	p.refundCalls++
	if p.refundErr != nil {
		return nil, p.refundErr
	}
	if p.refund != nil {
		return p.refund, nil
	}
	return &provider.RefundOutcome{RefundID: "re-" + paymentID, Status: "succeeded", AmountMinor: amountMinor}, nil
}

func (p *stubProvider) Ack() provider.WebhookReply {
	return provider.WebhookReply{StatusCode: 200, Body: []byte("ack")}
}

func (p *stubProvider) Reject() provider.WebhookReply {
	return provider.WebhookReply{StatusCode: 400, Body: []byte("reject")}
}

type serviceFixture struct {
	svc       *CheckoutService
	orders    *serviceOrderRepo
	attempts  *serviceAttemptRepo
	events    *serviceEventRepo
	callbacks *serviceCallbackRepo
	carts     *serviceCartClient
	logHook   *test.Hook
}

func newServiceFixture(notificationsCfg config.NotificationsConfig, providers ...provider.Provider) *serviceFixture {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	f := &serviceFixture{
		orders:    newServiceOrderRepo(),
		attempts:  &serviceAttemptRepo{},
		events:    &serviceEventRepo{},
		callbacks: &serviceCallbackRepo{},
		carts:     &serviceCartClient{carts: map[string]*cart.Cart{}},
		logHook:   hook,
	}
	f.svc = NewCheckoutService(
		f.orders,
		f.attempts,
		f.events,
		f.callbacks,
		provider.NewRegistry(providers...),
		f.carts,
		&sequentialOrderNumbers{},
		config.CheckoutConfig{
			SuccessURL:             "https://shop.example/checkout/success",
			FailURL:                "https://shop.example/checkout/fail",
			Language:               "EN",
			AttemptTTL:             30 * time.Minute,
			ProviderTimeout:        time.Second,
			ConfigErrorLogInterval: time.Hour,
		},
		notificationsCfg,
		"checkout-app-key",
		logger,
	)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f *serviceFixture) pendingOrder(id uint64, orderNumber, providerCode string, totalMinor int64) *entity.Order {
	customer := "cust-1"
	order := &entity.Order{
		ID:                id,
		OrderNumber:       orderNumber,
		CheckoutRequestID: "req-" + orderNumber,
		CartID:            "cart-" + orderNumber,
		CustomerRef:       &customer,
		TotalMinor:        totalMinor,
		Currency:          "AMD",
		PaymentStatus:     entity.PaymentStatusPending,
		Provider:          providerCode,
		CreatedAt:         testNow.Add(-time.Hour),
		UpdatedAt:         testNow.Add(-time.Hour),
	}
	f.orders.put(order)
	return order
}

func (f *serviceFixture) logEntries(level logrus.Level, message string) int {
	n := 0
	for _, entry := range f.logHook.AllEntries() {
		if entry.Level == level && entry.Message == message {
			n++
		}
	}
	return n
}
