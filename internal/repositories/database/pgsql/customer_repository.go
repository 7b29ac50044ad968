package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	"github.com/SscSPs/cylinder_holdings/internal/models"
	"github.com/SscSPs/cylinder_holdings/internal/utils/mapping"
)

// PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade using pgx.
type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `account_number, name, contact_person, phone_number, email, address, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row, extra ...any) (models.Customer, error) {
	var m models.Customer
	dest := []any{
		&m.AccountNumber, &m.Name, &m.ContactPerson, &m.PhoneNumber, &m.Email, &m.Address, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
	err := row.Scan(append(dest, extra...)...)
	return m, err
}

func (r *PgxCustomerRepository) FindCustomerByAccountNumber(ctx context.Context, accountNumber string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE account_number = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, accountNumber)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find customer "+accountNumber, err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY account_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query customers", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan customer row", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating customer rows", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountNumber, m.Name, m.ContactPerson, m.PhoneNumber, m.Email, m.Address, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return fmt.Errorf("%w: customer %s", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save customer "+m.AccountNumber, err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpsertCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, bool, error) {
	m := mapping.ToModelCustomer(customer)
	// xmax is zero only for a freshly inserted row version
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (account_number) DO UPDATE SET
			name = EXCLUDED.name,
			contact_person = EXCLUDED.contact_person,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + customerColumns + `, (xmax = 0) AS inserted;
	`
	var inserted bool
	stored, err := scanCustomer(r.Pool.QueryRow(ctx, query,
		m.AccountNumber, m.Name, m.ContactPerson, m.PhoneNumber, m.Email, m.Address, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	), &inserted)
	if err != nil {
		return nil, false, apperrors.NewAppError(http.StatusInternalServerError, "failed to upsert customer "+m.AccountNumber, err)
	}
	result := mapping.ToDomainCustomer(stored)
	return &result, inserted, nil
}

func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, accountNumber string, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountNumber, now, userID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to deactivate customer "+accountNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, accountNumber)
	}
	return nil
}
