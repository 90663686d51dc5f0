package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.GatewayLatency)
	assert.Equal(t, 0.8, cfg.GatewaySuccessRate)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "RESET", cfg.ResetConfirmationToken)
	assert.Equal(t, 5, cfg.RecentTransactionsLimit)
	assert.Equal(t, "30-M", cfg.PaymentRateLimit)
	assert.Equal(t, "5-M", cfg.AdminRateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.PosthogAPIKey)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GATEWAY_LATENCY", "0s")
	t.Setenv("GATEWAY_SUCCESS_RATE", "1")
	t.Setenv("GATEWAY_TIMEOUT", "2s")
	t.Setenv("RESET_CONFIRMATION_TOKEN", "WIPE")
	t.Setenv("RECENT_TRANSACTIONS_LIMIT", "10")
	t.Setenv("PAYMENT_RATE_LIMIT", "100-H")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.GatewayLatency)
	assert.Equal(t, 1.0, cfg.GatewaySuccessRate)
	assert.Equal(t, 2*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "WIPE", cfg.ResetConfirmationToken)
	assert.Equal(t, 10, cfg.RecentTransactionsLimit)
	assert.Equal(t, "100-H", cfg.PaymentRateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("GATEWAY_LATENCY", "soon")
	t.Setenv("GATEWAY_SUCCESS_RATE", "1.5")
	t.Setenv("GATEWAY_TIMEOUT", "0s")
	t.Setenv("RECENT_TRANSACTIONS_LIMIT", "-1")
	t.Setenv("ADMIN_RATE_LIMIT", "five per minute")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.GatewayLatency)
	assert.Equal(t, 0.8, cfg.GatewaySuccessRate)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, 5, cfg.RecentTransactionsLimit)
	assert.Equal(t, "5-M", cfg.AdminRateLimit)
}
