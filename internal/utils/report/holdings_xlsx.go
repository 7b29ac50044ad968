// Package report renders reports into spreadsheet files.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

// XLSXContentType is the media type of an .xlsx workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const holdingsSheet = "Holdings"

var holdingsHeadings = []string{"Account Number", "Customer Name", "Holdings", "Last Movement Date"}

// WriteHoldingsXLSX writes the holdings report as a single-sheet workbook to w.
// A title row carries the report date and a total row closes the table.
func WriteHoldingsXLSX(w io.Writer, report dto.HoldingsReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", holdingsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetCellValue(holdingsSheet, "A1", "Cylinder Holdings as of "+report.AsOf); err != nil {
		return err
	}
	for i, h := range holdingsHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(holdingsSheet, cell, h); err != nil {
			return err
		}
	}

	row := 4
	for _, r := range report.Rows {
		values := []any{r.AccountNumber, r.CustomerName, r.Holdings, r.LastMovementDate}
		if err := f.SetSheetRow(holdingsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.AccountNumber, err)
		}
		row++
	}
	total := []any{"Total", "", report.TotalHoldings}
	if err := f.SetSheetRow(holdingsSheet, fmt.Sprintf("A%d", row), &total); err != nil {
		return err
	}

	if err := f.SetColWidth(holdingsSheet, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(holdingsSheet, "B", "B", 36); err != nil {
		return err
	}
	if err := f.SetColWidth(holdingsSheet, "D", "D", 20); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
