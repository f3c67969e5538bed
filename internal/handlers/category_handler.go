package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler exposes the categorizer and its rule dictionary
type CategoryHandler struct {
	categorizer services.CategorizerInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categorizer services.CategorizerInterface) *CategoryHandler {
	return &CategoryHandler{categorizer: categorizer}
}

// Categorize labels free text with a spending category
// @Summary Categorize text
// @Description Keyword rules first, then the AI classifier. Never fails; unknown text is Uncategorized.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CategorizeRequest true "Text"
// @Success 200 {object} SuccessResponse{data=models.CategorizationResult}
// @Router /categorize [post]
func (h *CategoryHandler) Categorize(c echo.Context) error {
	var req dto.CategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result := h.categorizer.CategorizeDetailed(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// ListCategories returns every category an entry may carry
// @Summary List categories
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.CategoriesResponse}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.CategoriesResponse{Categories: models.AllCategories()}})
}

// ListRules returns the keyword rule dictionary
// @Summary List category rules
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=[]models.CategoryRule}
// @Router /categories/rules [get]
func (h *CategoryHandler) ListRules(c echo.Context) error {
	rules, err := h.categorizer.ListRules()
	if err != nil {
		return SendServiceError(c, err)
	}
	if rules == nil {
		rules = []models.CategoryRule{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rules})
}

// CreateRule adds a manual keyword rule
// @Summary Create category rule
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRuleRequest true "Rule"
// @Success 201 {object} SuccessResponse{data=models.CategoryRule}
// @Failure 409 {object} errors.ErrorResponse "RULE_002 - Keyword exists"
// @Router /categories/rules [post]
func (h *CategoryHandler) CreateRule(c echo.Context) error {
	var req dto.CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	rule, err := h.categorizer.AddRule(req.Keyword, models.CanonicalCategory(req.Category))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: rule})
}

// DeleteRule removes a keyword rule
// @Summary Delete category rule
// @Tags Categories
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "RULE_001 - Rule not found"
// @Router /categories/rules/{id} [delete]
func (h *CategoryHandler) DeleteRule(c echo.Context) error {
	ruleID, ok := parseUUIDParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID format"))
	}

	if err := h.categorizer.DeleteRule(ruleID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
