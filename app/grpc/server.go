package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/vibast-solutions/ms-go-checkout/app/mapper"
	"github.com/vibast-solutions/ms-go-checkout/app/service"
	"github.com/vibast-solutions/ms-go-checkout/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	types.UnimplementedCheckoutServiceServer
	checkoutService *service.CheckoutService
}

func NewServer(checkoutService *service.CheckoutService) *Server {
	return &Server{checkoutService: checkoutService}
}

func (s *Server) Health(_ context.Context, _ *types.HealthRequest) (*types.HealthResponse, error) {
	return &types.HealthResponse{Status: "ok"}, nil
}

func (s *Server) ListProviders(_ context.Context, _ *types.ListProvidersRequest) (*types.ListProvidersResponse, error) {
	return &types.ListProvidersResponse{Providers: s.checkoutService.Providers()}, nil
}

func (s *Server) CreateCheckout(ctx context.Context, req *types.CheckoutRequest) (*types.CheckoutResponse, error) {
	l := loggerWithContext(ctx)
	if strings.TrimSpace(req.GetRequestId()) == "" {
		req.RequestId = RequestIDFromContext(ctx)
	}
	if err := req.Validate(); err != nil {
		l.WithError(err).Debug("Checkout validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.checkoutService.Checkout(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Checkout failed")
	}

	return mapper.CheckoutToProto(result.Order, result.Attempt), nil
}

func (s *Server) GetOrderPayment(ctx context.Context, req *types.GetOrderPaymentRequest) (*types.CheckoutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.checkoutService.GetOrderPayment(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Get order payment failed")
	}

	return mapper.CheckoutToProto(result.Order, result.Attempt), nil
}

func (s *Server) RetryPayment(ctx context.Context, req *types.RetryPaymentRequest) (*types.CheckoutResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.checkoutService.RetryPayment(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Retry payment failed")
	}

	return mapper.CheckoutToProto(result.Order, result.Attempt), nil
}

func (s *Server) GetOrderDetails(ctx context.Context, req *types.GetOrderDetailsRequest) (*types.OrderDetailsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	details, err := s.checkoutService.GetOrderDetails(ctx, req.GetOrderNumber())
	if err != nil {
		return nil, s.toStatus(ctx, err, "Get order details failed")
	}

	return &types.OrderDetailsResponse{
		Order:     mapper.OrderToPayment(details.Order),
		Attempts:  mapper.AttemptsToProto(details.Attempts),
		Events:    mapper.EventsToProto(details.Events),
		Callbacks: mapper.CallbacksToProto(details.Callbacks),
	}, nil
}

func (s *Server) RefundOrder(ctx context.Context, req *types.RefundOrderRequest) (*types.RefundOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.checkoutService.RefundOrder(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Refund order failed")
	}

	return &types.RefundOrderResponse{
		Order:        mapper.OrderToPayment(result.Order),
		RefundId:     result.Outcome.RefundID,
		RefundStatus: result.Outcome.Status,
		AmountMinor:  result.Outcome.AmountMinor,
	}, nil
}

func (s *Server) toStatus(ctx context.Context, err error, message string) error {
	var unavailable *service.ProviderUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return status.Errorf(codes.Unavailable, "%s: order=%s", service.ErrProviderUnavailable.Error(), unavailable.OrderNumber)
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrProviderUnsupported):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		return status.Error(codes.NotFound, "order not found")
	case errors.Is(err, service.ErrCartNotFound):
		return status.Error(codes.NotFound, "cart not found")
	case errors.Is(err, service.ErrOrderForbidden), errors.Is(err, service.ErrCartForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrCartEmpty), errors.Is(err, service.ErrInvalidCart), errors.Is(err, service.ErrRefundUnsupported),
		errors.Is(err, service.ErrRefundRejected):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrStatusConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		loggerWithContext(ctx).WithError(err).Error(message)
		return status.Error(codes.Internal, "internal server error")
	}
}
