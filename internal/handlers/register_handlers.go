package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tpaylabs/readiness_backend/cmd/docs"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/metrics"
	"github.com/tpaylabs/readiness_backend/internal/middleware"
	"github.com/tpaylabs/readiness_backend/internal/platform/config"
	"github.com/tpaylabs/readiness_backend/internal/utils"
)

// Observability bundles the optional collectors the router reports to.
// A nil Metrics disables /metrics; a nil Posthog disables analytics.
type Observability struct {
	Metrics *metrics.Metrics
	Posthog *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	obs Observability,
) error {
	registerRootRoutes(r)

	if obs.Metrics != nil {
		r.GET("/metrics", gin.WrapH(obs.Metrics.Handler()))
	}

	if err := setupAPIV1Routes(r, cfg, services, obs); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	obs Observability,
) error {
	paymentLimiter, err := middleware.NewRateLimiter(cfg.PaymentRateLimit)
	if err != nil {
		return fmt.Errorf("payment rate limiter: %w", err)
	}
	adminLimiter, err := middleware.NewRateLimiter(cfg.AdminRateLimit)
	if err != nil {
		return fmt.Errorf("admin rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1", middleware.PosthogMiddleware(obs.Posthog))

	// Delegate route registration to specific handlers, passing required services
	registerPaymentRoutes(v1, service.Payment, obs.Posthog, middleware.RateLimit(paymentLimiter))
	registerTransactionRoutes(v1, service.Transaction)
	registerReportingRoutes(v1, service.Reporting)
	registerInterpretationRoutes(v1, service.Interpretation)
	registerAdminRoutes(v1, service.Admin, middleware.RateLimit(adminLimiter))
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
