package services

import (
	"context"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// GetCustomer retrieves a customer by account number.
	GetCustomer(ctx context.Context, accountNumber string) (*domain.Customer, error)

	// GetCustomerSummary retrieves a customer with its current holdings.
	GetCustomerSummary(ctx context.Context, accountNumber string) (*domain.CustomerSummary, error)

	// ListActiveCustomers lists active customers with their current holdings.
	ListActiveCustomers(ctx context.Context) ([]domain.CustomerSummary, error)

	// GetCustomerDetails retrieves the customer card with its most recent documents.
	GetCustomerDetails(ctx context.Context, accountNumber string) (*domain.CustomerDetails, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	// CreateCustomer records a customer entered by hand.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actor domain.Actor) (*domain.Customer, error)

	// DeactivateCustomer clears the customer's active flag. Admin only.
	DeactivateCustomer(ctx context.Context, accountNumber string, actor domain.Actor) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
