package repositories

import (
	"context"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions returns a snapshot of all transactions, most recent first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionByID returns the transaction with the given id or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error)

	// TransactionStats aggregates outcomes over the current contents.
	TransactionStats(ctx context.Context) (domain.TransactionStats, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// InsertTransaction prepends a fully formed transaction and returns it.
	InsertTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)

	// ResetTransactions replaces all contents with the seed data set.
	ResetTransactions(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
