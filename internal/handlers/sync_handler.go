package handlers

import (
	"net/http"
	"strings"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SyncHandler drives bank linking and transaction sync
type SyncHandler struct {
	syncService services.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService services.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// CreateSession starts bank linking for the caller
// @Summary Create connect session
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 201 {object} SuccessResponse{data=dto.ConnectSessionResponse}
// @Failure 502 {object} errors.ErrorResponse "SYNC_002 - Provider failure"
// @Router /sync/sessions [post]
func (h *SyncHandler) CreateSession(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	session, err := h.syncService.CreateSession(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: session})
}

// FetchTransactions pulls new transactions for one connection
// @Summary Fetch connection transactions
// @Description Idempotent; records already in the ledger are skipped.
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Param connectionId path string true "Provider connection ID"
// @Success 200 {object} SuccessResponse{data=dto.FetchResponse}
// @Failure 404 {object} errors.ErrorResponse "SYNC_001 - Connection not found"
// @Failure 409 {object} errors.ErrorResponse "SYNC_005 - Sync already running"
// @Router /sync/connections/{connectionId}/fetch [post]
func (h *SyncHandler) FetchTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	connectionID := strings.TrimSpace(c.Param("connectionId"))
	if connectionID == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("connectionId is required"))
	}

	entries, err := h.syncService.FetchTransactions(c.Request().Context(), connectionID, userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.FetchResponse{
		ConnectionID: connectionID,
		Imported:     len(entries),
		Entries:      dto.NewEntryResponses(entries),
	}})
}

// ImportAll syncs every connection the provider knows for the caller
// @Summary Sync all connections
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.ImportAllResponse}
// @Router /sync/import-all [post]
func (h *SyncHandler) ImportAll(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	result, err := h.syncService.ImportAllConnections(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// Status reports the caller's link state and connections
// @Summary Sync status
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.SyncStatusResponse}
// @Router /sync/status [get]
func (h *SyncHandler) Status(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	status, err := h.syncService.Status(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: status})
}

// Callback receives connection lifecycle notifications from the provider
// @Summary Provider callback
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body dto.SaltEdgeCallback true "Callback payload"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "SYNC_003 - Invalid callback"
// @Router /provider/callback [post]
func (h *SyncHandler) Callback(c echo.Context) error {
	var payload dto.SaltEdgeCallback
	if err := c.Bind(&payload); err != nil {
		return SendError(c, errors.SyncInvalidCallback, errors.WithDetails("Invalid callback body"))
	}

	if err := h.syncService.HandleCallback(c.Request().Context(), payload); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "callback processed"})
}
