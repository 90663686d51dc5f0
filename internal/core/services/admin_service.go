package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
)

// DefaultResetConfirmationToken must be typed back to confirm a reset.
const DefaultResetConfirmationToken = "RESET"

// adminService implements the AdminSvcFacade interface
type adminService struct {
	BaseService
	transactionRepo   portsrepo.TransactionWriter
	confirmationToken string
}

// NewAdminService creates a new admin service. An empty token falls back to DefaultResetConfirmationToken.
func NewAdminService(repo portsrepo.TransactionWriter, confirmationToken string) portssvc.AdminSvcFacade {
	if confirmationToken == "" {
		confirmationToken = DefaultResetConfirmationToken
	}
	return &adminService{
		transactionRepo:   repo,
		confirmationToken: confirmationToken,
	}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

// ResetTransactions discards all recorded tests and restores the seed data.
func (s *adminService) ResetTransactions(ctx context.Context, confirmation string) error {
	if subtle.ConstantTimeCompare([]byte(confirmation), []byte(s.confirmationToken)) != 1 {
		s.LogWarn(ctx, "Reset refused: confirmation token mismatch")
		return fmt.Errorf("%w: type %s to confirm", apperrors.ErrConfirmationMismatch, s.confirmationToken)
	}

	if err := s.transactionRepo.ResetTransactions(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset transactions")
		return fmt.Errorf("failed to reset transactions: %w", err)
	}

	s.LogInfo(ctx, "All transaction data reset to seed")
	return nil
}
