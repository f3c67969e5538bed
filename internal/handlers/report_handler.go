package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves monthly summaries, spending insights and ledger exports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MonthlySummary totals one calendar month
// @Summary Monthly summary
// @Description Income, expense, net and per-category expense totals for one month (UTC)
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} SuccessResponse{data=models.MonthlySummary}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid period"
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.MonthlyReportQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	summary, err := h.reportService.MonthlySummary(userID, query.Year, query.Month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// ExportCSV downloads the caller's ledger in the import file layout
// @Summary Export ledger as CSV
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param direction query string false "INCOME or EXPENSE"
// @Param category query string false "Category"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} file
// @Router /reports/export [get]
func (h *ReportHandler) ExportCSV(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListEntriesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	filters, err := parseLedgerFilters(query)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	// Buffer so a failure halfway through still produces a JSON error.
	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(userID, filters, &buf); err != nil {
		return SendServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "ledger.csv"))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Insights reports notable changes in recent spending
// @Summary Spending insights
// @Description Compares the last 7 days of expenses per category with the weekly average of the 30 days before, falling back to an all-time breakdown
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=[]models.SpendingInsight}
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /reports/insights [get]
func (h *ReportHandler) Insights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insights, err := h.reportService.Insights(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: insights})
}
