package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	unsetEnv(t, "MYSQL_DSN")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MYSQL_DSN")
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/checkout?parseTime=true")
	setEnv(t, "APP_SERVICE_NAME", "checkout-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "GRPC_PORT", "9191")
	setEnv(t, "MYSQL_MAX_OPEN_CONNS", "20")
	setEnv(t, "MYSQL_MAX_IDLE_CONNS", "8")
	setEnv(t, "MYSQL_CONN_MAX_LIFETIME_MINUTES", "40")
	setEnv(t, "CHECKOUT_ATTEMPT_TTL_MINUTES", "45")
	setEnv(t, "CHECKOUT_WEBHOOK_RATE_PER_MINUTE", "30")
	setEnv(t, "CHECKOUT_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.0/24,")
	setEnv(t, "JOBS_RUN_TIMEOUT_SECONDS", "90")
	setEnv(t, "IDRAM_SANDBOX", "true")
	setEnv(t, "IDRAM_MERCHANT_ID", "110000601")
	setEnv(t, "NOTIFICATIONS_MAX_ATTEMPTS", "5")
	setEnv(t, "NOTIFICATIONS_RETRY_INTERVAL_MINUTES", "7")
	setEnv(t, "NOTIFICATIONS_BATCH_SIZE", "99")
	setEnv(t, "OTEL_TRACING_ENABLED", "true")
	setEnv(t, "OTEL_TRACES_SAMPLER_RATIO", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.App.ServiceName != "checkout-test" {
		t.Fatalf("unexpected app service name: %s", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8181" || cfg.GRPC.Port != "9191" {
		t.Fatalf("unexpected ports: http=%s grpc=%s", cfg.HTTP.Port, cfg.GRPC.Port)
	}
	if cfg.MySQL.MaxOpenConns != 20 || cfg.MySQL.MaxIdleConns != 8 {
		t.Fatalf("unexpected mysql pool config: %+v", cfg.MySQL)
	}
	if cfg.MySQL.ConnMaxLifetime != 40*time.Minute {
		t.Fatalf("unexpected mysql lifetime: %v", cfg.MySQL.ConnMaxLifetime)
	}
	if cfg.Checkout.AttemptTTL != 45*time.Minute {
		t.Fatalf("unexpected attempt ttl: %v", cfg.Checkout.AttemptTTL)
	}
	if cfg.Checkout.WebhookRatePerMinute != 30 {
		t.Fatalf("unexpected webhook rate: %d", cfg.Checkout.WebhookRatePerMinute)
	}
	if len(cfg.Checkout.TrustedProxies) != 2 || cfg.Checkout.TrustedProxies[1] != "192.168.1.0/24" {
		t.Fatalf("unexpected trusted proxies: %v", cfg.Checkout.TrustedProxies)
	}
	if cfg.Jobs.RunTimeout != 90*time.Second {
		t.Fatalf("unexpected job run timeout: %v", cfg.Jobs.RunTimeout)
	}
	if !cfg.Idram.Sandbox || cfg.Idram.MerchantID != "110000601" {
		t.Fatalf("unexpected idram config: %+v", cfg.Idram)
	}
	if cfg.Notifications.MaxAttempts != 5 {
		t.Fatalf("unexpected notification max attempts: %d", cfg.Notifications.MaxAttempts)
	}
	if cfg.Notifications.RetryInterval != 7*time.Minute {
		t.Fatalf("unexpected notification retry interval: %v", cfg.Notifications.RetryInterval)
	}
	if cfg.Notifications.BatchSize != 99 {
		t.Fatalf("unexpected notification batch size: %d", cfg.Notifications.BatchSize)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.SamplingRatio != 0.5 {
		t.Fatalf("unexpected tracing config: %+v", cfg.Tracing)
	}
}

func TestLoadMissingProviderCredentialsIsNotFatal(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/checkout?parseTime=true")
	unsetEnv(t, "IDRAM_SECRET_KEY")
	unsetEnv(t, "STRIPE_SECRET_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error without provider credentials, got %v", err)
	}
	if cfg.Idram.SecretKey != "" || cfg.Stripe.SecretKey != "" {
		t.Fatal("expected empty provider secrets")
	}
	if cfg.Stripe.SignatureToleranceSeconds != 300 {
		t.Fatalf("unexpected default stripe tolerance: %d", cfg.Stripe.SignatureToleranceSeconds)
	}
}
