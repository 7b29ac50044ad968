package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
)

const allCustomersTitle = "All Customers"

// holdingsService derives balances from the ledger; it never writes.
type holdingsService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerReader
	customerRepo portsrepo.CustomerReader
	excludeVoid  bool
	trace        bool
}

// HoldingsOption is a functional option for configuring the holdings service
type HoldingsOption func(*holdingsService)

// WithExcludeVoid leaves VOID documents out of every fold.
func WithExcludeVoid(exclude bool) HoldingsOption {
	return func(s *holdingsService) {
		s.excludeVoid = exclude
	}
}

// WithLedgerTrace logs every applied movement at debug level.
func WithLedgerTrace(enabled bool) HoldingsOption {
	return func(s *holdingsService) {
		s.trace = enabled
	}
}

// NewHoldingsService creates a new holdings service with the provided options
func NewHoldingsService(ledgerRepo portsrepo.LedgerReader, customerRepo portsrepo.CustomerReader, options ...HoldingsOption) portssvc.HoldingsSvcFacade {
	svc := &holdingsService{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.HoldingsSvcFacade = (*holdingsService)(nil)

func (s *holdingsService) TotalHoldings(ctx context.Context, accountNumber string) (int, error) {
	account, err := resolveAccountNumber(accountNumber)
	if err != nil {
		return 0, err
	}
	if _, err := s.customerRepo.FindCustomerByAccountNumber(ctx, account); err != nil {
		return 0, err
	}

	entries, err := s.ledgerRepo.ListLedgerEntries(ctx, domain.LedgerFilter{CustomerAccount: &account, ExcludeVoid: s.excludeVoid})
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger", slog.String("account_number", account))
		return 0, fmt.Errorf("failed to read ledger for customer %s: %w", account, err)
	}
	return domain.FoldHoldings(entries, s.observer(ctx)), nil
}

func (s *holdingsService) MonthlySeries(ctx context.Context, accountNumber *string, year int) (*domain.MonthlySeries, error) {
	filter := domain.LedgerFilter{ExcludeVoid: s.excludeVoid}
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	filter.Through = &yearEnd

	title := allCustomersTitle
	if accountNumber != nil {
		account, err := resolveAccountNumber(*accountNumber)
		if err != nil {
			return nil, err
		}
		customer, err := s.customerRepo.FindCustomerByAccountNumber(ctx, account)
		if err != nil {
			return nil, err
		}
		filter.CustomerAccount = &account
		title = customer.Name
	}

	entries, err := s.ledgerRepo.ListLedgerEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger for monthly series", slog.Int("year", year))
		return nil, fmt.Errorf("failed to read ledger for monthly series: %w", err)
	}

	series := domain.BuildMonthlySeries(entries, year, s.observer(ctx))
	series.Title = fmt.Sprintf("Monthly Holdings - %s", title)
	return &series, nil
}

func (s *holdingsService) HoldingsAsOf(ctx context.Context, asOf time.Time) ([]domain.CustomerHolding, error) {
	through := domain.DateOnly(asOf)
	entries, err := s.ledgerRepo.ListLedgerEntries(ctx, domain.LedgerFilter{
		Through:     &through,
		ExcludeVoid: s.excludeVoid,
		ActiveOnly:  true,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger for holdings report", slog.Time("as_of", through))
		return nil, fmt.Errorf("failed to read ledger for holdings report: %w", err)
	}

	rows := domain.HoldingsByCustomerAsOf(entries, through)
	if len(rows) == 0 {
		return rows, nil
	}

	customers, err := s.customerRepo.ListCustomers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for holdings report: %w", err)
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.AccountNumber] = c.Name
	}
	for i := range rows {
		rows[i].CustomerName = names[rows[i].AccountNumber]
	}
	return rows, nil
}

func (s *holdingsService) CurrentHoldingsByCustomer(ctx context.Context) (map[string]int, error) {
	entries, err := s.ledgerRepo.ListLedgerEntries(ctx, domain.LedgerFilter{ExcludeVoid: s.excludeVoid})
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger")
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	byCustomer := make(map[string][]domain.LedgerEntry)
	for _, e := range entries {
		byCustomer[e.CustomerAccount] = append(byCustomer[e.CustomerAccount], e)
	}
	totals := make(map[string]int, len(byCustomer))
	for account, customerEntries := range byCustomer {
		totals[account] = domain.FoldHoldings(customerEntries, nil)
	}
	return totals, nil
}

// observer returns the trace hook for a fold, or nil when tracing is off.
func (s *holdingsService) observer(ctx context.Context) domain.FoldObserver {
	if !s.trace {
		return nil
	}
	logger := s.GetLogger(ctx)
	return func(e domain.LedgerEntry, before, after int) {
		logger.Debug("Ledger movement applied",
			slog.String("document_number", e.DocumentNumber),
			slog.String("document_date", e.DocumentDate.Format(time.DateOnly)),
			slog.String("customer_account", e.CustomerAccount),
			slog.String("direction", e.Direction.Label()),
			slog.Int("quantity", e.Quantity),
			slog.Int("before", before),
			slog.Int("after", after),
		)
	}
}
