package services

import (
	"context"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
)

// ReportingSvcFacade defines operations for readiness reports
type ReportingSvcFacade interface {
	// GetStats aggregates outcomes over every stored transaction
	GetStats(ctx context.Context) (*domain.TransactionStats, error)

	// GetDashboard builds the dashboard overview: stats, approved volume, success rate and recent activity
	GetDashboard(ctx context.Context) (*domain.DashboardSummary, error)
}
