package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tpaylabs/readiness_backend/internal/core/services"
	"github.com/tpaylabs/readiness_backend/internal/handlers"
	"github.com/tpaylabs/readiness_backend/internal/metrics"
	"github.com/tpaylabs/readiness_backend/internal/middleware"
	"github.com/tpaylabs/readiness_backend/internal/platform/config"
	"github.com/tpaylabs/readiness_backend/internal/repositories/memory"
	"github.com/tpaylabs/readiness_backend/internal/utils"
)

// @title TPay Readiness Backend API
// @version 1.0
// @description Payment readiness dashboard backend: simulated card payments against a mock gateway, transaction history, readiness statistics and response-code interpretation.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	appMetrics := metrics.New()

	repos := memory.NewRepositoryProvider()
	serviceContainer := services.NewServiceContainer(cfg, repos, appMetrics)
	logger.Info("In-memory transaction store seeded.",
		slog.Duration("gateway_latency", cfg.GatewayLatency),
		slog.Float64("gateway_success_rate", cfg.GatewaySuccessRate),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(appMetrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Location"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.Observability{
		Metrics: appMetrics,
		Posthog: posthogClient,
	})
	if err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
