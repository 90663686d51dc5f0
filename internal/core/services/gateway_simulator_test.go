package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	"github.com/tpaylabs/readiness_backend/internal/core/services"
)

// fixedSource always returns the same draws.
type fixedSource struct {
	float float64
	index int
}

func (f fixedSource) Float64() float64 { return f.float }
func (f fixedSource) IntN(n int) int   { return f.index % n }

var transactionIDPattern = regexp.MustCompile(`^tpay_\d{13}[0-9a-z]{8}$`)

func TestGatewaySimulator_Approved(t *testing.T) {
	sim := services.NewGatewaySimulator(
		services.WithLatency(0),
		services.WithOutcomeSource(fixedSource{float: 0.1}),
	)

	result, err := sim.Charge(context.Background(), decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, "00", result.ResponseCode)
	assert.Equal(t, "Transaction Approved", result.GatewayMessage)
	assert.Regexp(t, transactionIDPattern, result.TransactionID)
}

func TestGatewaySimulator_DeclineTable(t *testing.T) {
	for i, want := range services.DeclineResponses {
		sim := services.NewGatewaySimulator(
			services.WithLatency(0),
			services.WithOutcomeSource(fixedSource{float: 0.95, index: i}),
		)

		result, err := sim.Charge(context.Background(), decimal.NewFromInt(10))
		require.NoError(t, err)

		assert.Equal(t, domain.StatusFailed, result.Status)
		assert.Equal(t, want.Code, result.ResponseCode)
		assert.Equal(t, want.Message, result.GatewayMessage)
	}
}

func TestGatewaySimulator_SuccessRateBoundaries(t *testing.T) {
	always := services.NewGatewaySimulator(services.WithLatency(0), services.WithSuccessRate(1),
		services.WithOutcomeSource(fixedSource{float: 0.999}))
	never := services.NewGatewaySimulator(services.WithLatency(0), services.WithSuccessRate(0),
		services.WithOutcomeSource(fixedSource{float: 0}))

	ok, err := always.Charge(context.Background(), decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, ok.Status)

	declined, err := never.Charge(context.Background(), decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, declined.Status)
}

func TestGatewaySimulator_RandomOutcomesArePaired(t *testing.T) {
	sim := services.NewGatewaySimulator(services.WithLatency(0))

	valid := map[string]string{services.ApprovedResponse.Code: services.ApprovedResponse.Message}
	for _, d := range services.DeclineResponses {
		valid[d.Code] = d.Message
	}

	for i := 0; i < 200; i++ {
		result, err := sim.Charge(context.Background(), decimal.NewFromInt(1))
		require.NoError(t, err)

		assert.Equal(t, valid[result.ResponseCode], result.GatewayMessage)
		assert.Equal(t, result.ResponseCode == "00", result.Status == domain.StatusSuccess)
		assert.Regexp(t, transactionIDPattern, result.TransactionID)
	}
}

func TestGatewaySimulator_TransactionIDUsesClock(t *testing.T) {
	at := time.UnixMilli(1721557800000)
	sim := services.NewGatewaySimulator(
		services.WithLatency(0),
		services.WithSimulatorClock(func() time.Time { return at }),
		services.WithOutcomeSource(fixedSource{float: 0.1, index: 35}),
	)

	result, err := sim.Charge(context.Background(), decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, "tpay_1721557800000zzzzzzzz", result.TransactionID)
}

func TestGatewaySimulator_HonoursLatency(t *testing.T) {
	sim := services.NewGatewaySimulator(services.WithLatency(30 * time.Millisecond))

	start := time.Now()
	_, err := sim.Charge(context.Background(), decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestGatewaySimulator_ContextCancelled(t *testing.T) {
	sim := services.NewGatewaySimulator(services.WithLatency(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sim.Charge(ctx, decimal.NewFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Without latency an already-cancelled context is still reported.
	done, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	_, err = services.NewGatewaySimulator(services.WithLatency(0)).Charge(done, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, context.Canceled)
}
