package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// maxImportFileSize caps uploaded statement files
const maxImportFileSize = 10 << 20

// ImportHandler handles statement file uploads
type ImportHandler struct {
	importService services.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportFile imports a CSV or XLS statement into the caller's ledger
// @Summary Import statement file
// @Description Rows that cannot be parsed are skipped and reported; the rest are imported.
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Statement (.csv or .xls)"
// @Param dedupe formData bool false "Skip near-duplicate rows"
// @Success 200 {object} SuccessResponse{data=dto.ImportResult}
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 / IMPORT_002 / IMPORT_003"
// @Router /imports [post]
func (h *ImportHandler) ImportFile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("file is required"))
	}
	if header.Size > maxImportFileSize {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails(fmt.Sprintf("file exceeds %d bytes", maxImportFileSize)))
	}

	file, err := header.Open()
	if err != nil {
		return SendError(c, errors.ImportUnreadableFile)
	}
	defer file.Close()

	opts := dto.ImportOptions{}
	if raw := c.FormValue("dedupe"); raw != "" {
		opts.Dedupe, err = strconv.ParseBool(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("dedupe must be a boolean"))
		}
	}

	result, err := h.importService.ImportFile(c.Request().Context(), userID, header.Filename, file, opts)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// SampleCSV downloads an import template
// @Summary Import template
// @Tags Imports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /imports/sample [get]
func (h *ImportHandler) SampleCSV(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sample.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", h.importService.SampleCSV())
}
