package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	"github.com/SscSPs/cylinder_holdings/internal/models"
	"github.com/SscSPs/cylinder_holdings/internal/utils/mapping"
)

// PgxLedgerRepository reads movements joined with their documents for holdings folds.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// ListLedgerEntries returns the entries matching filter in ledger order, read from one snapshot.
func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT m.movement_id, d.document_id, d.document_number, d.document_type, d.document_date,
			d.created_at, d.status, d.customer_account, m.direction, m.quantity
		FROM cylinder_movements m
		JOIN documents d ON d.document_id = m.document_id
		JOIN customers c ON c.account_number = d.customer_account
		WHERE TRUE`)
	args := []any{}

	if filter.CustomerAccount != nil {
		args = append(args, *filter.CustomerAccount)
		fmt.Fprintf(&sb, ` AND d.customer_account = $%d`, len(args))
	}
	if filter.Before != nil {
		args = append(args, domain.DateOnly(*filter.Before))
		fmt.Fprintf(&sb, ` AND d.document_date < $%d`, len(args))
	}
	if filter.Through != nil {
		args = append(args, domain.DateOnly(*filter.Through))
		fmt.Fprintf(&sb, ` AND d.document_date <= $%d`, len(args))
	}
	if filter.ExcludeVoid {
		args = append(args, string(domain.StatusVoid))
		fmt.Fprintf(&sb, ` AND d.status <> $%d`, len(args))
	}
	if filter.ActiveOnly {
		sb.WriteString(` AND c.is_active`)
	}
	sb.WriteString(` ORDER BY d.document_date, d.document_type, d.created_at, d.document_id, m.movement_id;`)

	tx, err := r.BeginReadOnly(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	rows, err := tx.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query ledger entries", err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.MovementID, &m.DocumentID, &m.DocumentNumber, &m.DocumentType, &m.DocumentDate,
			&m.DocumentCreatedAt, &m.DocumentStatus, &m.CustomerAccount, &m.Direction, &m.Quantity,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan ledger row", err)
		}
		entry, err := mapping.ToDomainLedgerEntry(m)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map ledger row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating ledger rows", err)
	}
	return entries, nil
}
