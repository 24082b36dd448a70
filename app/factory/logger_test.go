package factory

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func TestNewModuleLogger(t *testing.T) {
	logger := NewModuleLogger("checkout-controller")
	if logger == nil {
		t.Fatal("expected logger")
	}
}

func TestLoggerWithContextAddsRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	logger := LoggerWithContext(NewModuleLogger("checkout-controller"), ctx)
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", logger)
	}
	if entry.Data["request_id"] != "req-123" {
		t.Fatalf("expected request_id=req-123, got %v", entry.Data["request_id"])
	}
	if entry.Data["module"] != "checkout-controller" {
		t.Fatalf("expected module field, got %v", entry.Data["module"])
	}
}

func TestLoggerWithContextPrefersResponseRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Response().Header().Set(echo.HeaderXRequestID, "generated-1")

	entry := LoggerWithContext(NewModuleLogger("checkout-controller"), ctx).(*logrus.Entry)
	if entry.Data["request_id"] != "generated-1" {
		t.Fatalf("expected generated request id, got %v", entry.Data["request_id"])
	}
}
