package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-checkout/app/factory"
	"github.com/vibast-solutions/ms-go-checkout/app/mapper"
	"github.com/vibast-solutions/ms-go-checkout/app/service"
	"github.com/vibast-solutions/ms-go-checkout/app/types"
)

type CheckoutController struct {
	checkoutService *service.CheckoutService
	logger          logrus.FieldLogger
}

func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
		logger:          factory.NewModuleLogger("checkout-controller"),
	}
}

func (c *CheckoutController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *CheckoutController) ListProviders(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.ListProvidersResponse{Providers: c.checkoutService.Providers()})
}

func (c *CheckoutController) Checkout(ctx echo.Context) error {
	req, err := types.NewCheckoutRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.checkoutService.Checkout(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Checkout failed")
	}

	return ctx.JSON(http.StatusCreated, mapper.CheckoutToProto(result.Order, result.Attempt))
}

func (c *CheckoutController) GetOrderPayment(ctx echo.Context) error {
	req, err := types.NewGetOrderPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.checkoutService.GetOrderPayment(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Get order payment failed")
	}

	return ctx.JSON(http.StatusOK, mapper.CheckoutToProto(result.Order, result.Attempt))
}

func (c *CheckoutController) RetryPayment(ctx echo.Context) error {
	req, err := types.NewRetryPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.checkoutService.RetryPayment(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Retry payment failed")
	}

	return ctx.JSON(http.StatusOK, mapper.CheckoutToProto(result.Order, result.Attempt))
}

func (c *CheckoutController) GetOrderDetails(ctx echo.Context) error {
	req, err := types.NewGetOrderDetailsRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	details, err := c.checkoutService.GetOrderDetails(ctx.Request().Context(), req.GetOrderNumber())
	if err != nil {
		return c.writeServiceError(ctx, err, "Get order details failed")
	}

	return ctx.JSON(http.StatusOK, &types.OrderDetailsResponse{
		Order:     mapper.OrderToPayment(details.Order),
		Attempts:  mapper.AttemptsToProto(details.Attempts),
		Events:    mapper.EventsToProto(details.Events),
		Callbacks: mapper.CallbacksToProto(details.Callbacks),
	})
}

func (c *CheckoutController) RefundOrder(ctx echo.Context) error {
	req, err := types.NewRefundOrderRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.checkoutService.RefundOrder(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Refund order failed")
	}

	return ctx.JSON(http.StatusOK, &types.RefundOrderResponse{
		Order:        mapper.OrderToPayment(result.Order),
		RefundId:     result.Outcome.RefundID,
		RefundStatus: result.Outcome.Status,
		AmountMinor:  result.Outcome.AmountMinor,
	})
}

func (c *CheckoutController) writeServiceError(ctx echo.Context, err error, message string) error {
	var unavailable *service.ProviderUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return ctx.JSON(http.StatusServiceUnavailable, &types.ErrorResponse{
			Error:       service.ErrProviderUnavailable.Error(),
			OrderNumber: unavailable.OrderNumber,
			Retryable:   true,
		})
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrProviderUnsupported):
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		return c.writeError(ctx, http.StatusNotFound, "order not found")
	case errors.Is(err, service.ErrCartNotFound):
		return c.writeError(ctx, http.StatusNotFound, "cart not found")
	case errors.Is(err, service.ErrOrderForbidden), errors.Is(err, service.ErrCartForbidden):
		return c.writeError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrCartEmpty), errors.Is(err, service.ErrInvalidCart), errors.Is(err, service.ErrRefundUnsupported),
		errors.Is(err, service.ErrRefundRejected):
		return c.writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrStatusConflict):
		return c.writeError(ctx, http.StatusConflict, err.Error())
	default:
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error(message)
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func (c *CheckoutController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
