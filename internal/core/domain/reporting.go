package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopFailureReasonsLimit caps the number of failure reasons reported in stats.
const TopFailureReasonsLimit = 3

// FailureReason counts how often a (response code, gateway message) pair caused a decline.
type FailureReason struct {
	Reason string `json:"reason"` // "code - message"
	Count  int    `json:"count"`
}

// TransactionStats aggregates outcomes over a set of transactions.
type TransactionStats struct {
	Total             int             `json:"total"`
	Success           int             `json:"success"`
	Failed            int             `json:"failed"`
	TopFailureReasons []FailureReason `json:"topFailureReasons"`
}

// DashboardSummary is the overview shown on the readiness dashboard.
type DashboardSummary struct {
	Stats       TransactionStats `json:"stats"`
	TotalVolume decimal.Decimal  `json:"totalVolume"` // sum of successful amounts
	SuccessRate float64          `json:"successRate"` // percent, 0 when there are no transactions
	Recent      []Transaction    `json:"recent"`
}

type failureKey struct {
	code    string
	message string
}

// ComputeStats counts successes and failures and ranks decline reasons.
// Reasons with equal counts keep the order in which they first appear in txns.
func ComputeStats(txns []Transaction) TransactionStats {
	stats := TransactionStats{
		Total:             len(txns),
		TopFailureReasons: []FailureReason{},
	}

	counts := make(map[failureKey]int)
	var order []failureKey
	for _, tx := range txns {
		if tx.IsSuccess() {
			stats.Success++
			continue
		}
		key := failureKey{code: tx.ResponseCode, message: tx.GatewayMessage}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	stats.Failed = stats.Total - stats.Success

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > TopFailureReasonsLimit {
		order = order[:TopFailureReasonsLimit]
	}
	for _, key := range order {
		stats.TopFailureReasons = append(stats.TopFailureReasons, FailureReason{
			Reason: key.code + " - " + key.message,
			Count:  counts[key],
		})
	}
	return stats
}

// SuccessVolume sums the amounts of approved transactions.
func SuccessVolume(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txns {
		if tx.IsSuccess() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SuccessRate returns the approval percentage, or 0 for an empty set.
func (s TransactionStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Success) / float64(s.Total) * 100
}
