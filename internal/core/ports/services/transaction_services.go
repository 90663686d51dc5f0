package services

import (
	"context"

	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	"github.com/tpaylabs/readiness_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction history
type TransactionReaderSvc interface {
	// ListTransactions returns transactions newest first. A zero Limit returns everything
	// from the cursor onwards.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
}
