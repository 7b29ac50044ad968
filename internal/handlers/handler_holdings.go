package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
	"github.com/SscSPs/cylinder_holdings/internal/utils/report"
)

// holdingsHandler serves the holdings reports.
type holdingsHandler struct {
	holdingsService portssvc.HoldingsSvcFacade
	now             func() time.Time
}

func newHoldingsHandler(hs portssvc.HoldingsSvcFacade) *holdingsHandler {
	return &holdingsHandler{holdingsService: hs, now: time.Now}
}

// registerHoldingsRoutes registers routes related to holdings.
func registerHoldingsRoutes(rg *gin.RouterGroup, hs portssvc.HoldingsSvcFacade) {
	h := newHoldingsHandler(hs)

	holdings := rg.Group("/holdings")
	{
		holdings.GET("/monthly", h.monthlySeries)
		holdings.GET("/report", h.holdingsReport)
	}
}

// monthlySeries godoc
// @Summary Monthly holdings
// @Description Opening balance and month-end holdings for each month of a year, for one customer or all customers
// @Tags holdings
// @Produce json
// @Param accountNumber query string false "Six digit account number; omit for all customers"
// @Param year query int false "Calendar year, defaults to the current year"
// @Success 200 {object} domain.MonthlySeries
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /holdings/monthly [get]
func (h *holdingsHandler) monthlySeries(c *gin.Context) {
	var params dto.MonthlyHoldingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	year := params.Year
	if year == 0 {
		year = h.now().Year()
	}
	var account *string
	if params.AccountNumber != "" {
		account = &params.AccountNumber
	}

	series, err := h.holdingsService.MonthlySeries(c.Request.Context(), account, year)
	if err != nil {
		respondError(c, err, "Failed to compute monthly holdings")
		return
	}
	c.JSON(http.StatusOK, series)
}

// holdingsReport godoc
// @Summary Holdings at a date
// @Description Active customers with non-zero holdings on the date. format=xlsx returns a spreadsheet.
// @Tags holdings
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string false "Report date (YYYY-MM-DD), defaults to today"
// @Param format query string false "json or xlsx" default(json)
// @Success 200 {object} dto.HoldingsReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /holdings/report [get]
func (h *holdingsHandler) holdingsReport(c *gin.Context) {
	var params dto.HoldingsReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf := domain.DateOnly(h.now())
	if params.Date != "" {
		parsed, err := dto.ParseDate("date", params.Date)
		if err != nil {
			respondError(c, err, "Failed to build holdings report")
			return
		}
		asOf = parsed
	}

	rows, err := h.holdingsService.HoldingsAsOf(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to build holdings report")
		return
	}
	resp := dto.ToHoldingsReportResponse(asOf.Format(dto.DateLayout), rows)

	if params.Format != "xlsx" {
		c.JSON(http.StatusOK, resp)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteHoldingsXLSX(&buf, resp); err != nil {
		respondError(c, err, "Failed to write holdings spreadsheet")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=holdings_%s.xlsx", resp.AsOf))
	c.Data(http.StatusOK, report.XLSXContentType, buf.Bytes())
}
