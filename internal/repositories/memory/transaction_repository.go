package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
)

// TransactionRepository keeps transactions in process memory, newest insert first.
// Writers hold the lock exclusively; readers share it and always copy out.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	seed         func() []domain.Transaction
}

// newTransactionRepository creates a store loaded with the given seed data.
func newTransactionRepository(seed func() []domain.Transaction) *TransactionRepository {
	return &TransactionRepository{
		transactions: seed(),
		seed:         seed,
	}
}

// NewTransactionRepository creates a store loaded with SeedTransactions.
func NewTransactionRepository() *TransactionRepository {
	return newTransactionRepository(SeedTransactions)
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// InsertTransaction prepends tx. The caller is responsible for its contents.
func (r *TransactionRepository) InsertTransaction(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append([]domain.Transaction{tx}, r.transactions...)
	return tx, nil
}

// ResetTransactions discards every insert and restores the seed set.
func (r *TransactionRepository) ResetTransactions(_ context.Context) error {
	fresh := r.seed()

	r.mu.Lock()
	r.transactions = fresh
	r.mu.Unlock()
	return nil
}

// ListTransactions returns a copy sorted by date descending. Equal dates keep
// insertion order, newest first.
func (r *TransactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	out := r.snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// FindTransactionByID performs a linear scan for id.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tx := range r.transactions {
		if tx.ID == id {
			found := tx
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: transaction with id %s", apperrors.ErrNotFound, id)
}

// TransactionStats aggregates over the date-ordered contents.
func (r *TransactionRepository) TransactionStats(ctx context.Context) (domain.TransactionStats, error) {
	txns, err := r.ListTransactions(ctx)
	if err != nil {
		return domain.TransactionStats{}, err
	}
	return domain.ComputeStats(txns), nil
}

func (r *TransactionRepository) snapshot() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}
