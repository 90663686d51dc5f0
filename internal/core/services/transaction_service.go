package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/dto"
	"github.com/tpaylabs/readiness_backend/internal/utils/pagination"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewTransactionService creates a new transaction history service
func NewTransactionService(repo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions returns one page of history, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if params.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}

	all, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	start := 0
	if params.NextToken != "" {
		start, err = cursorStart(all, params.NextToken)
		if err != nil {
			s.LogWarn(ctx, "Rejected pagination token", slog.String("error", err.Error()))
			return nil, err
		}
	}

	page := all[start:]
	var nextToken *string
	if params.Limit > 0 && len(page) > params.Limit {
		page = page[:params.Limit]
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Date, last.ID)
		nextToken = &token
	}

	s.LogDebug(ctx, "Listed transactions",
		slog.Int("total", len(all)),
		slog.Int("returned", len(page)),
		slog.Bool("has_more", nextToken != nil))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page),
		NextToken:    nextToken,
	}, nil
}

// cursorStart finds where the page after the token begins. If the referenced
// transaction is gone (e.g. after a reset), paging resumes at the first older entry.
func cursorStart(txns []domain.Transaction, token string) (int, error) {
	date, id, err := pagination.DecodeToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	for i, tx := range txns {
		if tx.ID == id && tx.Date.Equal(date) {
			return i + 1, nil
		}
	}
	for i, tx := range txns {
		if tx.Date.Before(date) {
			return i, nil
		}
	}
	return len(txns), nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}

	tx, err := s.transactionRepo.FindTransactionByID(ctx, id)
	if err != nil {
		s.LogDebug(ctx, "Transaction lookup failed", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return tx, nil
}
