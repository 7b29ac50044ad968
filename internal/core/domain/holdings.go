package domain

import (
	"fmt"
	"sort"
	"time"
)

// LedgerEntry is one movement joined with the document fields that order it.
type LedgerEntry struct {
	MovementID        int64             `json:"movementID"`
	DocumentID        int64             `json:"documentID"`
	DocumentNumber    string            `json:"documentNumber"`
	DocumentType      DocumentType      `json:"-"`
	DocumentDate      time.Time         `json:"documentDate"`
	DocumentCreatedAt time.Time         `json:"documentCreatedAt"`
	DocumentStatus    DocumentStatus    `json:"documentStatus"`
	CustomerAccount   string            `json:"customerAccount"`
	Direction         MovementDirection `json:"direction"`
	Quantity          int               `json:"quantity"`
}

// Signed returns the entry's effect on holdings.
func (e LedgerEntry) Signed() int {
	if e.Direction == EmptyReturn {
		return -e.Quantity
	}
	return e.Quantity
}

// LedgerFilter selects the entries a holdings computation reads.
type LedgerFilter struct {
	CustomerAccount *string    // nil means every customer
	Before          *time.Time // document_date < Before
	Through         *time.Time // document_date <= Through
	ExcludeVoid     bool
	ActiveOnly      bool // only customers with the active flag set
}

// FoldObserver sees every applied entry with the totals around it. It must not
// affect the fold.
type FoldObserver func(entry LedgerEntry, before, after int)

// MonthlyHolding is the running total at the end of one calendar month.
type MonthlyHolding struct {
	Month    string `json:"month"` // YYYY-MM
	Received int    `json:"received"`
	Returned int    `json:"returned"`
	Holdings int    `json:"holdings"`
}

// MonthlySeries is the month by month holdings for a year.
type MonthlySeries struct {
	Title          string           `json:"title"`
	Year           int              `json:"year"`
	OpeningBalance int              `json:"openingBalance"`
	Months         []MonthlyHolding `json:"months"`
}

// CustomerHolding is one row of the holdings-at-date report.
type CustomerHolding struct {
	AccountNumber    string    `json:"accountNumber"`
	CustomerName     string    `json:"customerName"`
	Holdings         int       `json:"holdings"`
	LastMovementDate time.Time `json:"lastMovementDate"`
}

// SortLedgerEntries orders entries by document date, then document type
// (invoices before return slips), then document creation time. Movement id
// settles whatever is left so the order never depends on storage order.
func SortLedgerEntries(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		da, db := DateOnly(a.DocumentDate), DateOnly(b.DocumentDate)
		if !da.Equal(db) {
			return da.Before(db)
		}
		if ra, rb := a.DocumentType.sortRank(), b.DocumentType.sortRank(); ra != rb {
			return ra < rb
		}
		if !a.DocumentCreatedAt.Equal(b.DocumentCreatedAt) {
			return a.DocumentCreatedAt.Before(b.DocumentCreatedAt)
		}
		if a.DocumentID != b.DocumentID {
			return a.DocumentID < b.DocumentID
		}
		return a.MovementID < b.MovementID
	})
}

// FoldHoldings applies entries in ledger order starting from zero. The result
// may be negative when more cylinders came back than went out.
func FoldHoldings(entries []LedgerEntry, observe FoldObserver) int {
	return foldFrom(0, sortedCopy(entries), observe)
}

// BuildMonthlySeries computes the opening balance before January 1 of year and
// the running total at the end of each of its twelve months.
func BuildMonthlySeries(entries []LedgerEntry, year int, observe FoldObserver) MonthlySeries {
	sorted := sortedCopy(entries)
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	var prior []LedgerEntry
	idx := 0
	for idx < len(sorted) && DateOnly(sorted[idx].DocumentDate).Before(yearStart) {
		prior = append(prior, sorted[idx])
		idx++
	}
	opening := foldFrom(0, prior, observe)

	series := MonthlySeries{Year: year, OpeningBalance: opening, Months: make([]MonthlyHolding, 0, 12)}
	running := opening
	for month := time.January; month <= time.December; month++ {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		nextStart := monthStart.AddDate(0, 1, 0)

		point := MonthlyHolding{Month: fmt.Sprintf("%04d-%02d", year, int(month))}
		var inMonth []LedgerEntry
		for idx < len(sorted) {
			d := DateOnly(sorted[idx].DocumentDate)
			if !d.Before(nextStart) {
				break
			}
			if !d.Before(monthStart) {
				inMonth = append(inMonth, sorted[idx])
			}
			idx++
		}
		point.Received, point.Returned = sumEntries(inMonth)
		running = foldFrom(running, inMonth, observe)
		point.Holdings = running
		series.Months = append(series.Months, point)
	}
	return series
}

// HoldingsByCustomerAsOf folds every entry dated on or before asOf per customer
// and drops customers whose holdings are exactly zero. Rows come back sorted by
// account number; CustomerName is left for the caller to fill.
func HoldingsByCustomerAsOf(entries []LedgerEntry, asOf time.Time) []CustomerHolding {
	cutoff := DateOnly(asOf)
	byCustomer := make(map[string][]LedgerEntry)
	for _, e := range entries {
		if DateOnly(e.DocumentDate).After(cutoff) {
			continue
		}
		byCustomer[e.CustomerAccount] = append(byCustomer[e.CustomerAccount], e)
	}

	rows := make([]CustomerHolding, 0, len(byCustomer))
	for account, customerEntries := range byCustomer {
		holdings := FoldHoldings(customerEntries, nil)
		if holdings == 0 {
			continue
		}
		var last time.Time
		for _, e := range customerEntries {
			if d := DateOnly(e.DocumentDate); d.After(last) {
				last = d
			}
		}
		rows = append(rows, CustomerHolding{AccountNumber: account, Holdings: holdings, LastMovementDate: last})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountNumber < rows[j].AccountNumber })
	return rows
}

func foldFrom(start int, sorted []LedgerEntry, observe FoldObserver) int {
	total := start
	for _, e := range sorted {
		before := total
		total += e.Signed()
		if observe != nil {
			observe(e, before, total)
		}
	}
	return total
}

func sortedCopy(entries []LedgerEntry) []LedgerEntry {
	out := make([]LedgerEntry, len(entries))
	copy(out, entries)
	SortLedgerEntries(out)
	return out
}

func sumEntries(entries []LedgerEntry) (received, returned int) {
	for _, e := range entries {
		if e.Direction == EmptyReturn {
			returned += e.Quantity
		} else {
			received += e.Quantity
		}
	}
	return received, returned
}
