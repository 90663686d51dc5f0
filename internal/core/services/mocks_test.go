package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) TransactionStats(ctx context.Context) (domain.TransactionStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.TransactionStats), args.Error(1)
}

func (m *MockTransactionRepository) InsertTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	args := m.Called(ctx, tx)
	if fn, ok := args.Get(0).(func(context.Context, domain.Transaction) domain.Transaction); ok {
		return fn(ctx, tx), args.Error(1)
	}
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ResetTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock GatewaySimulator ---
type MockGatewaySimulator struct {
	mock.Mock
}

func (m *MockGatewaySimulator) Charge(ctx context.Context, amount decimal.Decimal) (domain.GatewayResult, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(domain.GatewayResult), args.Error(1)
}

var _ portssvc.GatewaySimulator = (*MockGatewaySimulator)(nil)

// --- Recording PaymentObserver ---
type recordingObserver struct {
	submissions        []domain.Transaction
	validationFailures int
	simulationFailures int
	latencies          []time.Duration
}

func (r *recordingObserver) RecordSubmission(tx domain.Transaction) {
	r.submissions = append(r.submissions, tx)
}
func (r *recordingObserver) RecordValidationFailure()              { r.validationFailures++ }
func (r *recordingObserver) RecordSimulationFailure()              { r.simulationFailures++ }
func (r *recordingObserver) ObserveGatewayLatency(d time.Duration) { r.latencies = append(r.latencies, d) }
