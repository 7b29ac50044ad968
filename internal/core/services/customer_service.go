package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

// recentDocumentsLimit is how many documents the customer card shows.
const recentDocumentsLimit = 5

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	documentRepo portsrepo.DocumentReader
	holdingsSvc  portssvc.HoldingsSvcFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, documentRepo portsrepo.DocumentReader, holdingsSvc portssvc.HoldingsSvcFacade) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		documentRepo: documentRepo,
		holdingsSvc:  holdingsSvc,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) GetCustomer(ctx context.Context, accountNumber string) (*domain.Customer, error) {
	account, err := resolveAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByAccountNumber(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get customer", slog.String("account_number", account))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerSummary(ctx context.Context, accountNumber string) (*domain.CustomerSummary, error) {
	customer, err := s.GetCustomer(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	total, err := s.holdingsSvc.TotalHoldings(ctx, customer.AccountNumber)
	if err != nil {
		return nil, err
	}
	return &domain.CustomerSummary{Customer: *customer, TotalHoldings: total}, nil
}

func (s *customerService) ListActiveCustomers(ctx context.Context) ([]domain.CustomerSummary, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	totals, err := s.holdingsSvc.CurrentHoldingsByCustomer(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CustomerSummary, len(customers))
	for i, c := range customers {
		summaries[i] = domain.CustomerSummary{Customer: c, TotalHoldings: totals[c.AccountNumber]}
	}
	return summaries, nil
}

func (s *customerService) GetCustomerDetails(ctx context.Context, accountNumber string) (*domain.CustomerDetails, error) {
	customer, err := s.GetCustomer(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	total, err := s.holdingsSvc.TotalHoldings(ctx, customer.AccountNumber)
	if err != nil {
		return nil, err
	}
	recent, _, err := s.documentRepo.ListDocumentsByCustomer(ctx, customer.AccountNumber, domain.DocumentListFilter{Limit: recentDocumentsLimit})
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent documents", slog.String("account_number", customer.AccountNumber))
		return nil, fmt.Errorf("failed to list recent documents: %w", err)
	}

	details := &domain.CustomerDetails{
		Customer:           *customer,
		TotalHoldings:      total,
		RecentTransactions: recent,
	}
	if len(recent) > 0 {
		last := recent[0].DocumentDate
		details.LastTransaction = &last
	}
	return details, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actor domain.Actor) (*domain.Customer, error) {
	account, err := resolveAccountNumber(req.AccountNumber)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "name", req.Name, "name is required")
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		AccountNumber: account,
		Name:          name,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		Email:         strings.TrimSpace(req.Email),
		Address:       strings.TrimSpace(req.Address),
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError(apperrors.ErrDuplicate, "accountNumber", account, "customer with this account number already exists")
		}
		s.LogError(ctx, err, "Failed to save customer", slog.String("account_number", account))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("account_number", account), slog.String("user_id", actor.UserID))
	return &customer, nil
}

func (s *customerService) DeactivateCustomer(ctx context.Context, accountNumber string, actor domain.Actor) error {
	if err := s.RequireAdmin(ctx, actor, "deactivate customers"); err != nil {
		return err
	}
	customer, err := s.GetCustomer(ctx, accountNumber)
	if err != nil {
		return err
	}
	if !customer.IsActive {
		return nil
	}
	if err := s.customerRepo.DeactivateCustomer(ctx, customer.AccountNumber, actor.UserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate customer", slog.String("account_number", customer.AccountNumber))
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}
	s.LogInfo(ctx, "Customer deactivated", slog.String("account_number", customer.AccountNumber), slog.String("user_id", actor.UserID))
	return nil
}
