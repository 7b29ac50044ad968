package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByAccountNumber retrieves a customer by its six digit account number.
	FindCustomerByAccountNumber(ctx context.Context, accountNumber string) (*domain.Customer, error)

	// ListCustomers retrieves customers ordered by account number.
	ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer. Returns ErrDuplicate if the account number is taken.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpsertCustomer inserts the customer or refreshes its contact fields. It returns
	// the stored row and whether it was created.
	UpsertCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, bool, error)

	// DeactivateCustomer clears the active flag of a customer.
	DeactivateCustomer(ctx context.Context, accountNumber string, userID string, now time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
