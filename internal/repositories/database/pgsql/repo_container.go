package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo: newPgxCustomerRepository(dbPool),
		DocumentRepo: newPgxDocumentRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
