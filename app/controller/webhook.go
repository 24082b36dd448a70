package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-checkout/app/factory"
	"github.com/vibast-solutions/ms-go-checkout/app/provider"
	"github.com/vibast-solutions/ms-go-checkout/app/service"
	"github.com/vibast-solutions/ms-go-checkout/app/throttle"
	"github.com/vibast-solutions/ms-go-checkout/app/types"
)

// WebhookController serves the public provider callback endpoints. Replies
// are the provider's own ack or reject bodies, never error details.
type WebhookController struct {
	checkoutService *service.CheckoutService
	limiter         *throttle.Limiter
	logger          logrus.FieldLogger
}

// NewWebhookController takes a nil limiter to disable per-IP rate limiting.
func NewWebhookController(checkoutService *service.CheckoutService, limiter *throttle.Limiter) *WebhookController {
	return &WebhookController{
		checkoutService: checkoutService,
		limiter:         limiter,
		logger:          factory.NewModuleLogger("webhook-controller"),
	}
}

func (c *WebhookController) HandleWebhook(ctx echo.Context) error {
	req, err := types.NewWebhookRequestFromContext(ctx)
	if err != nil {
		return ctx.NoContent(http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	if !c.limiter.Allow(req.RemoteIP) {
		factory.LoggerWithContext(c.logger, ctx).WithFields(logrus.Fields{
			"provider":  req.Provider,
			"remote_ip": req.RemoteIP,
		}).Warn("Webhook rate limit exceeded")
		return ctx.NoContent(http.StatusTooManyRequests)
	}

	cb := provider.NewCallback(req.Fields, req.Header, req.Body)
	cb.RemoteIP = req.RemoteIP

	outcome, err := c.checkoutService.HandleWebhook(ctx.Request().Context(), req.Provider, cb)
	if err != nil {
		if errors.Is(err, service.ErrProviderUnsupported) {
			return ctx.NoContent(http.StatusNotFound)
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).WithField("provider", req.Provider).Error("Handle webhook failed")
		return ctx.NoContent(http.StatusInternalServerError)
	}

	reply := outcome.Reply
	return ctx.Blob(reply.StatusCode, reply.ContentType, reply.Body)
}
