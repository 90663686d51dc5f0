package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
)

// DefaultRecentTransactionsLimit is how many transactions the dashboard shows.
const DefaultRecentTransactionsLimit = 5

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	recentLimit     int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithRecentTransactionsLimit sets how many recent transactions the dashboard includes.
func WithRecentTransactionsLimit(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.recentLimit = n
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.TransactionReader, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		transactionRepo: repo,
		recentLimit:     DefaultRecentTransactionsLimit,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetStats aggregates outcomes over every stored transaction
func (s *reportingService) GetStats(ctx context.Context) (*domain.TransactionStats, error) {
	stats, err := s.transactionRepo.TransactionStats(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute transaction stats")
		return nil, fmt.Errorf("failed to compute transaction stats: %w", err)
	}

	s.LogDebug(ctx, "Transaction stats computed",
		slog.Int("total", stats.Total),
		slog.Int("success", stats.Success),
		slog.Int("failed", stats.Failed))
	return &stats, nil
}

// GetDashboard derives every figure from a single snapshot so they agree with each other.
func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for dashboard")
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	stats := domain.ComputeStats(txns)
	recent := txns[:min(s.recentLimit, len(txns))]

	summary := &domain.DashboardSummary{
		Stats:       stats,
		TotalVolume: domain.SuccessVolume(txns),
		SuccessRate: stats.SuccessRate(),
		Recent:      recent,
	}

	s.LogDebug(ctx, "Dashboard summary built",
		slog.Int("total", stats.Total),
		slog.String("total_volume", summary.TotalVolume.String()),
		slog.Float64("success_rate", summary.SuccessRate))
	return summary, nil
}
