package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const filterDateLayout = "2006-01-02"

var errInvalidDateRange = fmt.Errorf("from must not be after to")

// LedgerHandler handles ledger entry and balance requests
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService services.LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// CreateEntry appends an income or expense entry
// @Summary Create ledger entry
// @Description Expenses larger than the current balance are rejected. A blank category is filled by the categorizer.
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} SuccessResponse{data=dto.EntryResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_002 - Insufficient funds"
// @Router /ledger/entries [post]
func (h *LedgerHandler) CreateEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	draft := &models.LedgerEntry{
		Amount:      decimal.RequireFromString(strings.TrimSpace(req.Amount)),
		Direction:   models.NormalizeDirection(req.Direction),
		Category:    models.CanonicalCategory(req.Category),
		Description: req.Description,
		Currency:    strings.ToUpper(req.Currency),
		Source:      models.EntrySourceManual,
	}
	if req.OccurredAt != nil {
		draft.OccurredAt = req.OccurredAt.UTC()
	}

	entry, err := h.ledgerService.Append(c.Request().Context(), userID, draft)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: dto.NewEntryResponse(*entry)})
}

// ListEntries returns a page of the caller's entries, newest first
// @Summary List ledger entries
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param direction query string false "INCOME or EXPENSE"
// @Param category query string false "Category"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / LEDGER_006"
// @Router /ledger/entries [get]
func (h *LedgerHandler) ListEntries(c echo.Context) error {
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

	entries, next, err := h.ledgerService.List(userID, filters, query.Cursor, query.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = services.DefaultLedgerPageSize
	}

	return c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.NewEntryResponses(entries),
		Pagination: dto.PaginationInfo{
			HasMore:    next != "",
			NextCursor: next,
			Limit:      limit,
		},
	})
}

// GetEntry returns one of the caller's entries
// @Summary Get ledger entry
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} SuccessResponse{data=dto.EntryResponse}
// @Failure 404 {object} errors.ErrorResponse "LEDGER_001 - Entry not found"
// @Router /ledger/entries/{id} [get]
func (h *LedgerHandler) GetEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID format"))
	}

	entry, err := h.ledgerService.Get(userID, entryID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewEntryResponse(*entry)})
}

// UpdateEntry patches an entry. An expense may not push the balance below zero.
// @Summary Update ledger entry
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body dto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=dto.EntryResponse}
// @Failure 404 {object} errors.ErrorResponse "LEDGER_001 - Entry not found"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_002 - Insufficient funds"
// @Router /ledger/entries/{id} [put]
func (h *LedgerHandler) UpdateEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID format"))
	}

	var req dto.UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	entry, err := h.ledgerService.Update(c.Request().Context(), userID, entryID, buildEntryPatch(req))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewEntryResponse(*entry)})
}

// DeleteEntry removes an entry
// @Summary Delete ledger entry
// @Tags Ledger
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "LEDGER_001 - Entry not found"
// @Router /ledger/entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID format"))
	}

	if err := h.ledgerService.Delete(c.Request().Context(), userID, entryID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBalance recomputes the caller's balance from the ledger
// @Summary Get balance
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.BalanceResponse}
// @Router /ledger/balance [get]
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	balance, err := h.ledgerService.Balance(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.BalanceResponse{Balance: balance.StringFixed(2)}})
}

func buildEntryPatch(req dto.UpdateEntryRequest) models.LedgerEntryPatch {
	var patch models.LedgerEntryPatch
	if req.Amount != nil {
		amount := decimal.RequireFromString(strings.TrimSpace(*req.Amount))
		patch.Amount = &amount
	}
	if req.Direction != nil {
		direction := models.NormalizeDirection(*req.Direction)
		patch.Direction = &direction
	}
	if req.Category != nil {
		category := models.CanonicalCategory(*req.Category)
		patch.Category = &category
	}
	patch.Description = req.Description
	if req.OccurredAt != nil {
		occurredAt := req.OccurredAt.UTC()
		patch.OccurredAt = &occurredAt
	}
	return patch
}

// parseLedgerFilters turns validated query strings into repository filters.
// The to date is inclusive, so it becomes the start of the following day.
func parseLedgerFilters(query dto.ListEntriesQuery) (models.LedgerFilters, error) {
	filters := models.LedgerFilters{
		Direction: models.NormalizeDirection(query.Direction),
		Category:  models.CanonicalCategory(query.Category),
	}

	if query.From != "" {
		from, err := time.Parse(filterDateLayout, query.From)
		if err != nil {
			return filters, err
		}
		filters.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(filterDateLayout, query.To)
		if err != nil {
			return filters, err
		}
		to = to.AddDate(0, 0, 1)
		filters.To = &to
	}
	if filters.From != nil && filters.To != nil && !filters.From.Before(*filters.To) {
		return filters, errInvalidDateRange
	}

	return filters, nil
}
