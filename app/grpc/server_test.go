package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-checkout/app/cart"
	"github.com/vibast-solutions/ms-go-checkout/app/entity"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"github.com/vibast-solutions/ms-go-checkout/app/repository"
	"github.com/vibast-solutions/ms-go-checkout/app/service"
	"github.com/vibast-solutions/ms-go-checkout/app/types"
	"github.com/vibast-solutions/ms-go-checkout/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type grpcOrderRepo struct {
	orders []*entity.Order
}

func (r *grpcOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = uint64(len(r.orders) + 1)
	copyItem := *order
	r.orders = append(r.orders, &copyItem)
	return nil
}

func (r *grpcOrderRepo) FindByID(_ context.Context, id uint64) (*entity.Order, error) {
	for _, item := range r.orders {
		if item.ID == id {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *grpcOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	for _, item := range r.orders {
		if item.OrderNumber == orderNumber {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *grpcOrderRepo) FindByCheckoutRequestID(_ context.Context, requestID string) (*entity.Order, error) {
	for _, item := range r.orders {
		if item.CheckoutRequestID == requestID {
			copyItem := *item
			return &copyItem, nil
		}
	}
	return nil, nil
}

func (r *grpcOrderRepo) UpdatePaymentStatus(_ context.Context, change repository.StatusChange) (bool, error) {
	for _, item := range r.orders {
		if item.ID == change.OrderID && item.PaymentStatus == change.From {
			item.PaymentStatus = change.To
			return true, nil
		}
	}
	return false, nil
}

func (r *grpcOrderRepo) UpdateProvider(context.Context, uint64, string, time.Time) (bool, error) {
	return true, nil
}

func (r *grpcOrderRepo) UpdateNotification(context.Context, *entity.Order) error {
	return nil
}

func (r *grpcOrderRepo) ListDueNotifications(context.Context, time.Time, int32) ([]*entity.Order, error) {
	return []*entity.Order{}, nil
}

type grpcAttemptRepo struct{}

func (r *grpcAttemptRepo) Create(context.Context, *entity.PaymentAttempt) error {
	return nil
}

func (r *grpcAttemptRepo) FindLatestOpenByOrderID(context.Context, uint64) (*entity.PaymentAttempt, error) {
	return nil, nil
}

func (r *grpcAttemptRepo) ListByOrderID(context.Context, uint64) ([]*entity.PaymentAttempt, error) {
	return []*entity.PaymentAttempt{}, nil
}

func (r *grpcAttemptRepo) ListExpiredOpen(context.Context, time.Time, int32) ([]*entity.PaymentAttempt, error) {
	return []*entity.PaymentAttempt{}, nil
}

func (r *grpcAttemptRepo) CloseOpen(context.Context, uint64, entity.AttemptStatus, time.Time) (int64, error) {
	return 0, nil
}

func (r *grpcAttemptRepo) UpdateStatus(context.Context, uint64, entity.AttemptStatus, entity.AttemptStatus, time.Time) (bool, error) {
	return false, nil
}

type grpcEventRepo struct{}

func (r *grpcEventRepo) Create(context.Context, *entity.OrderEvent) error {
	return nil
}

func (r *grpcEventRepo) ListByOrderID(context.Context, uint64) ([]*entity.OrderEvent, error) {
	return []*entity.OrderEvent{}, nil
}

type grpcCallbackRepo struct{}

func (r *grpcCallbackRepo) Create(context.Context, *entity.WebhookCallback) error {
	return nil
}

func (r *grpcCallbackRepo) ListByOrderID(context.Context, uint64) ([]*entity.WebhookCallback, error) {
	return []*entity.WebhookCallback{}, nil
}

type grpcCartClient struct{}

func (c *grpcCartClient) GetCart(_ context.Context, cartID string) (*cart.Cart, error) {
	if cartID != "cart-1" {
		return nil, cart.ErrCartNotFound
	}
	return &cart.Cart{
		ID:          "cart-1",
		CustomerRef: "cust-1",
		Currency:    "USD",
		Total:       decimal.RequireFromString("19.99"),
		Items:       []cart.Item{{ProductID: "sku-1", Quantity: 1, UnitPrice: decimal.RequireFromString("19.99")}},
	}, nil
}

type grpcOrderNumbers struct {
	next int
}

func (g *grpcOrderNumbers) Next() string {
	g.next++
	return fmt.Sprintf("ORD-%d", 2000+g.next)
}

func newGRPCServerForTest(repo *grpcOrderRepo, providers ...provider.Provider) *Server {
	checkoutService := service.NewCheckoutService(
		repo,
		&grpcAttemptRepo{},
		&grpcEventRepo{},
		&grpcCallbackRepo{},
		provider.NewRegistry(providers...),
		&grpcCartClient{},
		&grpcOrderNumbers{},
		config.CheckoutConfig{ProviderTimeout: time.Second, AttemptTTL: time.Minute},
		config.NotificationsConfig{},
		"checkout-app-key",
		nil,
	)
	return NewServer(checkoutService)
}

func TestCreateCheckoutInvalidArgument(t *testing.T) {
	srv := newGRPCServerForTest(&grpcOrderRepo{}, provider.NewCashProvider())

	_, err := srv.CreateCheckout(context.Background(), &types.CheckoutRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestCreateCheckoutUsesRequestIDFromMetadata(t *testing.T) {
	repo := &grpcOrderRepo{}
	srv := newGRPCServerForTest(repo, provider.NewCashProvider())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDHeader, "grpc-req-1"))

	resp, err := srv.CreateCheckout(ctx, &types.CheckoutRequest{CartId: "cart-1", Provider: "cash", CustomerRef: "cust-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetOrder().OrderNumber != "ORD-2001" || resp.GetOrder().TotalMinor != 1999 || !resp.Completed {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if repo.orders[0].CheckoutRequestID != "grpc-req-1" {
		t.Fatalf("expected request id from metadata, got %q", repo.orders[0].CheckoutRequestID)
	}
}

func TestCreateCheckoutProviderUnavailable(t *testing.T) {
	srv := newGRPCServerForTest(&grpcOrderRepo{}, provider.NewIdramProvider(provider.IdramConfig{}))

	_, err := srv.CreateCheckout(context.Background(), &types.CheckoutRequest{RequestId: "req-1", CartId: "cart-1", Provider: "idram", CustomerRef: "cust-1"})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestGetOrderPaymentNotFound(t *testing.T) {
	srv := newGRPCServerForTest(&grpcOrderRepo{}, provider.NewCashProvider())

	_, err := srv.GetOrderPayment(context.Background(), &types.GetOrderPaymentRequest{OrderNumber: "ORD-9", CustomerRef: "cust-1"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRefundOrderUnsupportedIsFailedPrecondition(t *testing.T) {
	txID := "cod-ORD-1"
	repo := &grpcOrderRepo{orders: []*entity.Order{{
		ID:                    1,
		OrderNumber:           "ORD-1",
		TotalMinor:            1999,
		Currency:              "USD",
		PaymentStatus:         entity.PaymentStatusPaid,
		Provider:              provider.CashCode,
		ProviderTransactionID: &txID,
	}}}
	srv := newGRPCServerForTest(repo, provider.NewCashProvider())

	_, err := srv.RefundOrder(context.Background(), &types.RefundOrderRequest{OrderNumber: "ORD-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestCheckoutServiceOverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(RecoveryInterceptor(), RequestIDInterceptor(), LoggingInterceptor()))
	types.RegisterCheckoutServiceServer(grpcSrv, newGRPCServerForTest(&grpcOrderRepo{}, provider.NewCashProvider(), provider.NewIdramProvider(provider.IdramConfig{})))
	go func() {
		_ = grpcSrv.Serve(lis)
	}()
	defer grpcSrv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	client := types.NewCheckoutServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.ListProviders(ctx, &types.ListProvidersRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument without x-request-id, got %v", err)
	}

	ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, "req-bufconn")
	providers, err := client.ListProviders(ctx, &types.ListProvidersRequest{})
	if err != nil {
		t.Fatalf("list providers failed: %v", err)
	}
	if len(providers.Providers) != 2 || providers.Providers[0] != "cash" {
		t.Fatalf("unexpected providers: %v", providers.Providers)
	}

	resp, err := client.CreateCheckout(ctx, &types.CheckoutRequest{CartId: "cart-1", Provider: "cash", CustomerRef: "cust-1"})
	if err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}
	if resp.GetOrder().PaymentStatus != "pending" || !resp.Completed {
		t.Fatalf("unexpected checkout response: %+v", resp)
	}
}
