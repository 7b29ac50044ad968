package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(id int64, account, number string, t domain.DocumentType, date time.Time, dir domain.MovementDirection, qty int) domain.LedgerEntry {
	return domain.LedgerEntry{
		MovementID:        id,
		DocumentID:        id,
		DocumentNumber:    number,
		DocumentType:      t,
		DocumentDate:      date,
		DocumentCreatedAt: date.Add(time.Duration(id) * time.Minute),
		DocumentStatus:    domain.StatusActive,
		CustomerAccount:   account,
		Direction:         dir,
		Quantity:          qty,
	}
}

func TestFoldHoldings_SameDayInvoiceBeforeReturnSlip(t *testing.T) {
	// Return slip stored (and created) first; the invoice must still apply first.
	slip := entry(1, "000001", "NR000001", domain.ReturnSlip, day(2024, 1, 5), domain.EmptyReturn, 4)
	inv := entry(2, "000001", "IN000001", domain.Invoice, day(2024, 1, 5), domain.Received, 10)

	var steps []int
	total := domain.FoldHoldings([]domain.LedgerEntry{slip, inv}, func(_ domain.LedgerEntry, _, after int) {
		steps = append(steps, after)
	})

	assert.Equal(t, 6, total)
	assert.Equal(t, []int{10, 6}, steps)
}

func TestFoldHoldings_IndependentOfStorageOrder(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry(1, "000001", "IN000001", domain.Invoice, day(2024, 3, 1), domain.Received, 7),
		entry(2, "000001", "NR000001", domain.ReturnSlip, day(2024, 2, 1), domain.EmptyReturn, 2),
		entry(3, "000001", "IN000002", domain.Invoice, day(2024, 1, 1), domain.Received, 5),
		entry(4, "000001", "IN000002", domain.Invoice, day(2024, 1, 1), domain.EmptyReturn, 1),
		entry(5, "000001", "NR000002", domain.ReturnSlip, day(2024, 4, 9), domain.EmptyReturn, 3),
	}
	reversed := make([]domain.LedgerEntry, len(entries))
	for i := range entries {
		reversed[len(entries)-1-i] = entries[i]
	}

	want := (7 + 5) - (2 + 1 + 3)
	assert.Equal(t, want, domain.FoldHoldings(entries, nil))
	assert.Equal(t, want, domain.FoldHoldings(reversed, nil))
}

func TestFoldHoldings_NegativeNotClamped(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry(1, "000001", "IN000001", domain.Invoice, day(2024, 1, 5), domain.Received, 3),
		entry(2, "000001", "NR000001", domain.ReturnSlip, day(2024, 1, 5), domain.EmptyReturn, 4),
	}
	assert.Equal(t, -1, domain.FoldHoldings(entries, nil))
}

func TestFoldHoldings_DoesNotReorderInput(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry(2, "000001", "NR000001", domain.ReturnSlip, day(2024, 1, 5), domain.EmptyReturn, 4),
		entry(1, "000001", "IN000001", domain.Invoice, day(2024, 1, 5), domain.Received, 10),
	}
	domain.FoldHoldings(entries, nil)
	assert.Equal(t, "NR000001", entries[0].DocumentNumber)
}

func TestSortLedgerEntries_CreationTimeBreaksTies(t *testing.T) {
	late := entry(1, "000001", "IN000009", domain.Invoice, day(2024, 1, 5), domain.Received, 1)
	late.DocumentCreatedAt = day(2024, 1, 6)
	early := entry(2, "000001", "IN000003", domain.Invoice, day(2024, 1, 5), domain.Received, 1)
	early.DocumentCreatedAt = day(2024, 1, 5)

	entries := []domain.LedgerEntry{late, early}
	domain.SortLedgerEntries(entries)
	assert.Equal(t, "IN000003", entries[0].DocumentNumber)
	assert.Equal(t, "IN000009", entries[1].DocumentNumber)
}

func TestBuildMonthlySeries(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry(1, "000001", "IN000001", domain.Invoice, day(2023, 11, 20), domain.Received, 8),
		entry(2, "000001", "NR000001", domain.ReturnSlip, day(2023, 12, 31), domain.EmptyReturn, 3),
		entry(3, "000001", "IN000002", domain.Invoice, day(2024, 1, 1), domain.Received, 4),
		entry(4, "000001", "NR000002", domain.ReturnSlip, day(2024, 1, 31), domain.EmptyReturn, 2),
		entry(5, "000001", "IN000003", domain.Invoice, day(2024, 3, 15), domain.Received, 6),
		entry(6, "000001", "NR000003", domain.ReturnSlip, day(2024, 12, 31), domain.EmptyReturn, 1),
		entry(7, "000001", "IN000004", domain.Invoice, day(2025, 1, 1), domain.Received, 100),
	}

	series := domain.BuildMonthlySeries(entries, 2024, nil)

	assert.Equal(t, 2024, series.Year)
	assert.Equal(t, 5, series.OpeningBalance)
	require.Len(t, series.Months, 12)
	assert.Equal(t, "2024-01", series.Months[0].Month)
	assert.Equal(t, 4, series.Months[0].Received)
	assert.Equal(t, 2, series.Months[0].Returned)
	assert.Equal(t, 7, series.Months[0].Holdings)
	assert.Equal(t, 7, series.Months[1].Holdings)
	assert.Equal(t, 13, series.Months[2].Holdings)
	assert.Equal(t, 13, series.Months[10].Holdings)
	assert.Equal(t, "2024-12", series.Months[11].Month)
	assert.Equal(t, 12, series.Months[11].Holdings)

	again := domain.BuildMonthlySeries(entries, 2024, nil)
	assert.Equal(t, series, again)

	asOf := domain.HoldingsByCustomerAsOf(entries, day(2024, 12, 31))
	require.Len(t, asOf, 1)
	assert.Equal(t, series.Months[11].Holdings, asOf[0].Holdings)
}

func TestBuildMonthlySeries_NoEntries(t *testing.T) {
	series := domain.BuildMonthlySeries(nil, 2024, nil)
	assert.Equal(t, 0, series.OpeningBalance)
	require.Len(t, series.Months, 12)
	for _, m := range series.Months {
		assert.Equal(t, 0, m.Holdings)
	}
}

func TestHoldingsByCustomerAsOf(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry(1, "000002", "IN000001", domain.Invoice, day(2024, 1, 5), domain.Received, 10),
		entry(2, "000002", "NR000001", domain.ReturnSlip, day(2024, 2, 5), domain.EmptyReturn, 4),
		entry(3, "000001", "IN000002", domain.Invoice, day(2024, 1, 7), domain.Received, 2),
		entry(4, "000001", "NR000002", domain.ReturnSlip, day(2024, 1, 9), domain.EmptyReturn, 2),
		entry(5, "000003", "NR000003", domain.ReturnSlip, day(2024, 1, 10), domain.EmptyReturn, 1),
		entry(6, "000003", "IN000003", domain.Invoice, day(2024, 3, 1), domain.Received, 9),
	}

	rows := domain.HoldingsByCustomerAsOf(entries, day(2024, 2, 5))

	require.Len(t, rows, 2)
	assert.Equal(t, "000002", rows[0].AccountNumber)
	assert.Equal(t, 6, rows[0].Holdings)
	assert.Equal(t, day(2024, 2, 5), rows[0].LastMovementDate)
	assert.Equal(t, "000003", rows[1].AccountNumber)
	assert.Equal(t, -1, rows[1].Holdings)
	assert.Equal(t, day(2024, 1, 10), rows[1].LastMovementDate)
}
