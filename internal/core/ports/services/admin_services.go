package services

import "context"

// AdminSvcFacade defines destructive maintenance operations
type AdminSvcFacade interface {
	// ResetTransactions restores the seed data set once confirmation matches the configured token.
	ResetTransactions(ctx context.Context, confirmation string) error
}
