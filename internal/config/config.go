// Package config provides environment-backed configuration for the
// marketplace gateway.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values applied when environment variables are unset.
const (
	DefaultPort           = 8080
	DefaultRequestTimeout = 10 * time.Second
	DefaultSamplingRate   = 1.0
)

// Services holds the base URL of every backend domain service.
type Services struct {
	Order        string
	Payment      string
	Partner      string
	Offer        string
	User         string
	Notification string
	Review       string
	Auth         string
}

// Config holds the resolved gateway configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// Services are the backend base URLs.
	Services Services

	// RequestTimeout applies to every aggregation backend call. The raw
	// proxy path intentionally has no gateway-side timeout.
	RequestTimeout time.Duration

	// CORSAllowOrigins is the CORS allow-list.
	CORSAllowOrigins []string

	// LogLevel and LogFormat configure the logger.
	LogLevel  string
	LogFormat string

	// OTLPEndpoint enables trace export when non-empty.
	OTLPEndpoint string

	// TraceSamplingRate is the trace sampling ratio in [0, 1].
	TraceSamplingRate float64
}

// FromEnv builds a Config from environment variables, applying defaults
// for anything unset.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("GATEWAY_PORT", DefaultPort),
		Services: Services{
			Order:        getEnvOrDefault("ORDER_SERVICE_URL", "http://order-service:8000"),
			Payment:      getEnvOrDefault("PAYMENT_SERVICE_URL", "http://payment-service:8000"),
			Partner:      getEnvOrDefault("PARTNER_SERVICE_URL", "http://partner-service:8000"),
			Offer:        getEnvOrDefault("OFFER_SERVICE_URL", "http://offer-service:8000"),
			User:         getEnvOrDefault("USER_SERVICE_URL", "http://user-service:8000"),
			Notification: getEnvOrDefault("NOTIFICATION_SERVICE_URL", "http://notification-service:8000"),
			Review:       getEnvOrDefault("REVIEW_SERVICE_URL", "http://review-service:8000"),
			Auth:         getEnvOrDefault("AUTH_SERVICE_URL", "http://auth-service:8000"),
		},
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		CORSAllowOrigins:  getEnvList("CORS_ALLOW_ORIGINS", []string{"http://localhost:4200"}),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "json"),
		OTLPEndpoint:      os.Getenv("OTLP_ENDPOINT"),
		TraceSamplingRate: getEnvFloat("TRACE_SAMPLING_RATE", DefaultSamplingRate),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout)
	}

	for name, base := range map[string]string{
		"order":        c.Services.Order,
		"payment":      c.Services.Payment,
		"partner":      c.Services.Partner,
		"offer":        c.Services.Offer,
		"user":         c.Services.User,
		"notification": c.Services.Notification,
		"review":       c.Services.Review,
		"auth":         c.Services.Auth,
	} {
		if base == "" {
			return fmt.Errorf("%s service URL is empty", name)
		}
		u, err := url.Parse(base)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s service URL %q is not an absolute URL", name, base)
		}
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or a default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvFloat returns the environment variable as a float64 or a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getEnvDuration returns the environment variable as a duration or a
// default. Accepts Go duration syntax ("10s") and bare seconds ("10").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return defaultValue
}

// getEnvList returns a comma-separated environment variable as a slice,
// trimming whitespace around each element.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
