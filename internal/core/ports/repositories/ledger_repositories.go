package repositories

import (
	"context"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// LedgerReader reads movements joined with their documents for holdings computation.
// Every call reads one consistent snapshot.
type LedgerReader interface {
	ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
}
