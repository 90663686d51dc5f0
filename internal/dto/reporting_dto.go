package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	"github.com/tpaylabs/readiness_backend/internal/utils"
)

// StatsResponse represents the aggregate transaction statistics
type StatsResponse struct {
	Total             int                    `json:"total"`
	Success           int                    `json:"success"`
	Failed            int                    `json:"failed"`
	TopFailureReasons []domain.FailureReason `json:"topFailureReasons"`
}

// DashboardResponse represents the readiness dashboard overview
type DashboardResponse struct {
	Stats                StatsResponse         `json:"stats"`
	TotalVolume          decimal.Decimal       `json:"totalVolume" swaggertype:"number"`
	FormattedTotalVolume string                `json:"formattedTotalVolume" example:"BDT 180.50"`
	SuccessRate          float64               `json:"successRate" example:"60"`
	RecentTransactions   []TransactionResponse `json:"recentTransactions"`
}

// ToStatsResponse converts domain.TransactionStats to its response DTO
func ToStatsResponse(stats *domain.TransactionStats) StatsResponse {
	reasons := stats.TopFailureReasons
	if reasons == nil {
		reasons = []domain.FailureReason{}
	}
	return StatsResponse{
		Total:             stats.Total,
		Success:           stats.Success,
		Failed:            stats.Failed,
		TopFailureReasons: reasons,
	}
}

// ToDashboardResponse converts domain.DashboardSummary to its response DTO
func ToDashboardResponse(summary *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Stats:                ToStatsResponse(&summary.Stats),
		TotalVolume:          summary.TotalVolume,
		FormattedTotalVolume: utils.FormatBDT(summary.TotalVolume),
		SuccessRate:          summary.SuccessRate,
		RecentTransactions:   ToTransactionResponses(summary.Recent),
	}
}
