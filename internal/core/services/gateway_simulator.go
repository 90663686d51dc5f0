package services

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
)

const (
	// DefaultGatewayLatency mimics a round trip to a real gateway.
	DefaultGatewayLatency = 1500 * time.Millisecond
	// DefaultGatewaySuccessRate is the share of charges the simulator approves.
	DefaultGatewaySuccessRate = 0.8

	transactionIDPrefix = "tpay_"
	transactionIDSuffix = 8
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GatewayResponse is a (response code, gateway message) pair.
type GatewayResponse struct {
	Code    string
	Message string
}

// ApprovedResponse is returned for every approved charge.
var ApprovedResponse = GatewayResponse{Code: "00", Message: "Transaction Approved"}

// DeclineResponses are drawn uniformly for declined charges.
var DeclineResponses = []GatewayResponse{
	{Code: "51", Message: "Insufficient Funds"},
	{Code: "14", Message: "Invalid Card Number"},
	{Code: "54", Message: "Expired Card"},
	{Code: "05", Message: "Do Not Honor"},
}

// OutcomeSource supplies the randomness behind simulated outcomes.
// Implementations must be safe for concurrent use.
type OutcomeSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// mathRandSource uses the goroutine-safe top-level math/rand/v2 generator.
type mathRandSource struct{}

func (mathRandSource) Float64() float64 { return rand.Float64() }
func (mathRandSource) IntN(n int) int   { return rand.IntN(n) }

// gatewaySimulator implements the GatewaySimulator interface
type gatewaySimulator struct {
	BaseService
	latency     time.Duration
	successRate float64
	source      OutcomeSource
	now         func() time.Time
}

// GatewaySimulatorOption is a functional option for configuring the gateway simulator
type GatewaySimulatorOption func(*gatewaySimulator)

// WithLatency sets the artificial delay before each outcome. Zero disables it.
func WithLatency(d time.Duration) GatewaySimulatorOption {
	return func(s *gatewaySimulator) {
		s.latency = d
	}
}

// WithSuccessRate sets the approval probability, clamped to [0, 1].
func WithSuccessRate(rate float64) GatewaySimulatorOption {
	return func(s *gatewaySimulator) {
		s.successRate = min(max(rate, 0), 1)
	}
}

// WithOutcomeSource replaces the random source, typically with a deterministic one in tests.
func WithOutcomeSource(src OutcomeSource) GatewaySimulatorOption {
	return func(s *gatewaySimulator) {
		if src != nil {
			s.source = src
		}
	}
}

// WithSimulatorClock sets the clock used for transaction id timestamps.
func WithSimulatorClock(now func() time.Time) GatewaySimulatorOption {
	return func(s *gatewaySimulator) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGatewaySimulator creates a new gateway simulator with the provided options
func NewGatewaySimulator(options ...GatewaySimulatorOption) portssvc.GatewaySimulator {
	s := &gatewaySimulator{
		latency:     DefaultGatewayLatency,
		successRate: DefaultGatewaySuccessRate,
		source:      mathRandSource{},
		now:         time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(s)
	}

	return s
}

// Ensure gatewaySimulator implements the GatewaySimulator interface
var _ portssvc.GatewaySimulator = (*gatewaySimulator)(nil)

// Charge waits out the simulated latency and then decides the outcome. The amount
// has no influence on the result.
func (s *gatewaySimulator) Charge(ctx context.Context, amount decimal.Decimal) (domain.GatewayResult, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return domain.GatewayResult{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return domain.GatewayResult{}, err
	}

	result := domain.GatewayResult{TransactionID: s.newTransactionID()}
	if s.source.Float64() < s.successRate {
		result.Status = domain.StatusSuccess
		result.ResponseCode = ApprovedResponse.Code
		result.GatewayMessage = ApprovedResponse.Message
	} else {
		decline := DeclineResponses[s.source.IntN(len(DeclineResponses))]
		result.Status = domain.StatusFailed
		result.ResponseCode = decline.Code
		result.GatewayMessage = decline.Message
	}

	s.LogDebug(ctx, "Gateway simulation completed",
		slog.String("amount", amount.String()),
		slog.String("status", string(result.Status)),
		slog.String("response_code", result.ResponseCode),
		slog.String("transaction_id", result.TransactionID))
	return result, nil
}

// newTransactionID returns tpay_<unix millis><8 base36 chars>. Uniqueness is
// probabilistic; there is no collision check.
func (s *gatewaySimulator) newTransactionID() string {
	var b strings.Builder
	b.Grow(len(transactionIDPrefix) + 13 + transactionIDSuffix)
	b.WriteString(transactionIDPrefix)
	b.WriteString(strconv.FormatInt(s.now().UnixMilli(), 10))
	for i := 0; i < transactionIDSuffix; i++ {
		b.WriteByte(base36Alphabet[s.source.IntN(len(base36Alphabet))])
	}
	return b.String()
}
