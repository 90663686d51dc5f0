package services

import (
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// observer may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, observer PaymentObserver) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	gateway := NewGatewaySimulator(
		WithLatency(cfg.GatewayLatency),
		WithSuccessRate(cfg.GatewaySuccessRate),
	)

	container.Payment = NewPaymentService(
		repos.TransactionRepo,
		gateway,
		WithGatewayTimeout(cfg.GatewayTimeout),
		WithPaymentObserver(observer),
	)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		WithRecentTransactionsLimit(cfg.RecentTransactionsLimit),
	)
	container.Admin = NewAdminService(repos.TransactionRepo, cfg.ResetConfirmationToken)
	container.Interpretation = NewInterpretationService()

	return container
}
