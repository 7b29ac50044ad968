package services

import (
	"context"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// HoldingsSvcFacade computes cylinder balances from recorded movements. It never writes.
type HoldingsSvcFacade interface {
	// TotalHoldings is the customer's balance over every movement on record.
	TotalHoldings(ctx context.Context, accountNumber string) (int, error)

	// MonthlySeries is the month-end balance for each month of year. A nil
	// accountNumber aggregates every customer.
	MonthlySeries(ctx context.Context, accountNumber *string, year int) (*domain.MonthlySeries, error)

	// HoldingsAsOf lists active customers with non-zero holdings on the date.
	HoldingsAsOf(ctx context.Context, asOf time.Time) ([]domain.CustomerHolding, error)

	// CurrentHoldingsByCustomer is every customer's balance over all movements, from one read.
	CurrentHoldingsByCustomer(ctx context.Context) (map[string]int, error)
}
