package memory

import (
	portsrepo "github.com/tpaylabs/readiness_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repositories. Contents live for the
// lifetime of the process only.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(),
	}
}
