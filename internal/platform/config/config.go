package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort                    = "8080"
	defaultGatewayLatency          = 1500 * time.Millisecond
	defaultGatewaySuccessRate      = 0.8
	defaultGatewayTimeout          = 10 * time.Second
	defaultResetConfirmationToken  = "RESET"
	defaultPaymentRateLimit        = "30-M"
	defaultAdminRateLimit          = "5-M"
	defaultCORSAllowedOrigins      = "http://localhost:3000"
	defaultRecentTransactionsLimit = 5
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Mock gateway behaviour
	GatewayLatency     time.Duration
	GatewaySuccessRate float64
	GatewayTimeout     time.Duration

	ResetConfirmationToken  string
	RecentTransactionsLimit int

	// Rate limits in ulule/limiter format, e.g. "30-M"
	PaymentRateLimit string
	AdminRateLimit   string

	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Invalid values fall back to their defaults with a warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GATEWAY_LATENCY", defaultGatewayLatency.String())
	viper.SetDefault("GATEWAY_SUCCESS_RATE", defaultGatewaySuccessRate)
	viper.SetDefault("GATEWAY_TIMEOUT", defaultGatewayTimeout.String())
	viper.SetDefault("RESET_CONFIRMATION_TOKEN", defaultResetConfirmationToken)
	viper.SetDefault("RECENT_TRANSACTIONS_LIMIT", defaultRecentTransactionsLimit)
	viper.SetDefault("PAYMENT_RATE_LIMIT", defaultPaymentRateLimit)
	viper.SetDefault("ADMIN_RATE_LIMIT", defaultAdminRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins)
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	logLevelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, cfg.LogLevel)
	}

	cfg.GatewayLatency = durationOrDefault("GATEWAY_LATENCY", defaultGatewayLatency, true)
	cfg.GatewayTimeout = durationOrDefault("GATEWAY_TIMEOUT", defaultGatewayTimeout, false)

	cfg.GatewaySuccessRate = viper.GetFloat64("GATEWAY_SUCCESS_RATE")
	if cfg.GatewaySuccessRate < 0 || cfg.GatewaySuccessRate > 1 {
		log.Printf("Warning: GATEWAY_SUCCESS_RATE must be between 0 and 1 (got %v). Defaulting to %v.\n", cfg.GatewaySuccessRate, defaultGatewaySuccessRate)
		cfg.GatewaySuccessRate = defaultGatewaySuccessRate
	}

	cfg.ResetConfirmationToken = viper.GetString("RESET_CONFIRMATION_TOKEN")
	if cfg.ResetConfirmationToken == "" {
		cfg.ResetConfirmationToken = defaultResetConfirmationToken
		log.Printf("Warning: RESET_CONFIRMATION_TOKEN is empty. Defaulting to %s.\n", cfg.ResetConfirmationToken)
	}

	cfg.RecentTransactionsLimit = viper.GetInt("RECENT_TRANSACTIONS_LIMIT")
	if cfg.RecentTransactionsLimit <= 0 {
		log.Printf("Warning: Invalid value for RECENT_TRANSACTIONS_LIMIT (%d). Defaulting to %d.\n", cfg.RecentTransactionsLimit, defaultRecentTransactionsLimit)
		cfg.RecentTransactionsLimit = defaultRecentTransactionsLimit
	}

	cfg.PaymentRateLimit = rateOrDefault("PAYMENT_RATE_LIMIT", defaultPaymentRateLimit)
	cfg.AdminRateLimit = rateOrDefault("ADMIN_RATE_LIMIT", defaultAdminRateLimit)

	cfg.CORSAllowedOrigins = splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSAllowedOrigins}
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration, allowZero bool) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		return def
	}
	return d
}

func rateOrDefault(key, def string) string {
	raw := viper.GetString(key)
	if _, err := limiter.NewRateFromFormatted(raw); err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		return def
	}
	return raw
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
