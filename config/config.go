package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              ServerConfig
	MySQL             MySQLConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
	Cart              CartConfig
	Checkout          CheckoutConfig
	Idram             IdramConfig
	Stripe            StripeConfig
	Notifications     NotificationsConfig
	Jobs              JobsConfig
	Tracing           TracingConfig
}

type AppConfig struct {
	ServiceName string
	Version     string
	Environment string
	APIKey      string
}

type ServerConfig struct {
	Host string
	Port string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

type CartConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

type CheckoutConfig struct {
	OrderNumberNode        int64
	SuccessURL             string
	FailURL                string
	Language               string
	AttemptTTL             time.Duration
	ProviderTimeout        time.Duration
	ConfigErrorLogInterval time.Duration
	WebhookRatePerMinute   int
	WebhookRateBurst       int

	// TrustedProxies lists CIDRs whose X-Forwarded-For is believed. Empty
	// means the socket peer address is the client.
	TrustedProxies []string
}

type IdramConfig struct {
	MerchantID string
	SecretKey  string
	BaseURL    string
	Sandbox    bool
	Language   string
}

type StripeConfig struct {
	SecretKey                 string
	WebhookSecret             string
	APIBaseURL                string
	SignatureToleranceSeconds int64
	HTTPTimeout               time.Duration
}

type NotificationsConfig struct {
	URL           string
	MaxAttempts   int32
	RetryInterval time.Duration
	HTTPTimeout   time.Duration
	BatchSize     int32
}

type JobsConfig struct {
	NotificationDispatchInterval time.Duration
	AttemptExpireInterval        time.Duration
	RunTimeout                   time.Duration
}

type TracingConfig struct {
	Enabled       bool
	Endpoint      string
	Insecure      bool
	SamplingRatio float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "checkout-service"),
			Version:     getEnv("APP_VERSION", "dev"),
			Environment: getEnv("APP_ENV", "local"),
			APIKey:      getEnv("APP_API_KEY", ""),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		MySQL: MySQLConfig{
			DSN:             mysqlDSN,
			MaxOpenConns:    getIntEnv("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getMinutesEnv("MYSQL_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: getEnv("AUTH_SERVICE_GRPC_ADDR", "localhost:9090"),
		},
		Cart: CartConfig{
			BaseURL:     getEnv("CART_SERVICE_BASE_URL", "http://localhost:8081"),
			HTTPTimeout: getSecondsEnv("CART_SERVICE_HTTP_TIMEOUT_SECONDS", 5*time.Second),
		},
		Checkout: CheckoutConfig{
			OrderNumberNode:        int64(getIntEnv("CHECKOUT_ORDER_NUMBER_NODE", 1)),
			SuccessURL:             getEnv("CHECKOUT_SUCCESS_URL", ""),
			FailURL:                getEnv("CHECKOUT_FAIL_URL", ""),
			Language:               getEnv("CHECKOUT_LANGUAGE", "EN"),
			AttemptTTL:             getMinutesEnv("CHECKOUT_ATTEMPT_TTL_MINUTES", 30*time.Minute),
			ProviderTimeout:        getSecondsEnv("CHECKOUT_PROVIDER_TIMEOUT_SECONDS", 15*time.Second),
			ConfigErrorLogInterval: getMinutesEnv("CHECKOUT_CONFIG_ERROR_LOG_INTERVAL_MINUTES", 10*time.Minute),
			WebhookRatePerMinute:   getIntEnv("CHECKOUT_WEBHOOK_RATE_PER_MINUTE", 120),
			WebhookRateBurst:       getIntEnv("CHECKOUT_WEBHOOK_RATE_BURST", 20),
			TrustedProxies:         getListEnv("CHECKOUT_TRUSTED_PROXIES"),
		},
		Idram: IdramConfig{
			MerchantID: getEnv("IDRAM_MERCHANT_ID", ""),
			SecretKey:  getEnv("IDRAM_SECRET_KEY", ""),
			BaseURL:    getEnv("IDRAM_BASE_URL", ""),
			Sandbox:    getBoolEnv("IDRAM_SANDBOX", false),
			Language:   getEnv("IDRAM_LANGUAGE", "EN"),
		},
		Stripe: StripeConfig{
			SecretKey:                 getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret:             getEnv("STRIPE_WEBHOOK_SECRET", ""),
			APIBaseURL:                getEnv("STRIPE_API_BASE_URL", ""),
			SignatureToleranceSeconds: int64(getIntEnv("STRIPE_SIGNATURE_TOLERANCE_SECONDS", 300)),
			HTTPTimeout:               getSecondsEnv("STRIPE_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
		Notifications: NotificationsConfig{
			URL:           getEnv("ORDER_STATUS_CALLBACK_URL", ""),
			MaxAttempts:   int32(getIntEnv("NOTIFICATIONS_MAX_ATTEMPTS", 10)),
			RetryInterval: getMinutesEnv("NOTIFICATIONS_RETRY_INTERVAL_MINUTES", 5*time.Minute),
			HTTPTimeout:   getSecondsEnv("NOTIFICATIONS_HTTP_TIMEOUT_SECONDS", 10*time.Second),
			BatchSize:     int32(getIntEnv("NOTIFICATIONS_BATCH_SIZE", 100)),
		},
		Jobs: JobsConfig{
			NotificationDispatchInterval: getMinutesEnv("JOBS_NOTIFICATION_DISPATCH_INTERVAL_MINUTES", time.Minute),
			AttemptExpireInterval:        getMinutesEnv("JOBS_ATTEMPT_EXPIRE_INTERVAL_MINUTES", 5*time.Minute),
			RunTimeout:                   getSecondsEnv("JOBS_RUN_TIMEOUT_SECONDS", 5*time.Minute),
		},
		Tracing: TracingConfig{
			Enabled:       getBoolEnv("OTEL_TRACING_ENABLED", false),
			Endpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:      getBoolEnv("OTEL_EXPORTER_OTLP_INSECURE", true),
			SamplingRatio: getFloatEnv("OTEL_TRACES_SAMPLER_RATIO", 0.1),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getListEnv(key string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getMinutesEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
