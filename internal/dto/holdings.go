package dto

import (
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// MonthlyHoldingsParams defines query parameters for the monthly series.
// An empty AccountNumber aggregates every customer; Year defaults to the current year.
type MonthlyHoldingsParams struct {
	AccountNumber string `form:"accountNumber" binding:"omitempty,accountnumber"`
	Year          int    `form:"year" binding:"omitempty,min=1900,max=9999"`
}

// HoldingsReportParams defines query parameters for the holdings-at-date report.
type HoldingsReportParams struct {
	Date   string `form:"date"` // YYYY-MM-DD, defaults to today
	Format string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// HoldingsReportRow is one customer line of the holdings report.
type HoldingsReportRow struct {
	AccountNumber    string `json:"accountNumber"`
	CustomerName     string `json:"customerName"`
	Holdings         int    `json:"holdings"`
	LastMovementDate string `json:"lastMovementDate"`
}

// HoldingsReportResponse is the holdings-at-date report.
type HoldingsReportResponse struct {
	AsOf          string              `json:"asOf"`
	Rows          []HoldingsReportRow `json:"rows"`
	TotalHoldings int                 `json:"totalHoldings"`
}

// TotalHoldingsResponse is a single customer's current balance.
type TotalHoldingsResponse struct {
	AccountNumber string `json:"accountNumber"`
	TotalHoldings int    `json:"totalHoldings"`
}

// ToHoldingsReportResponse converts report rows to the response DTO.
func ToHoldingsReportResponse(asOf string, rows []domain.CustomerHolding) HoldingsReportResponse {
	resp := HoldingsReportResponse{AsOf: asOf, Rows: make([]HoldingsReportRow, len(rows))}
	for i, r := range rows {
		resp.Rows[i] = HoldingsReportRow{
			AccountNumber:    r.AccountNumber,
			CustomerName:     r.CustomerName,
			Holdings:         r.Holdings,
			LastMovementDate: r.LastMovementDate.Format(DateLayout),
		}
		resp.TotalHoldings += r.Holdings
	}
	return resp
}
