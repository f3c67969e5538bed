package handlers

import (
	"log/slog"
	"net/http"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// 1. SendError - client and business errors with a known code (4xx)
//    SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//
// 2. SendServiceError - anything returned by a service. The domain error
//    taxonomy picks the code; unknown errors fall through to SendSystemError.
//
// 3. SendSystemError - internal errors (500). Details are logged, never returned.
//
// DO NOT USE echo.NewHTTPError() or c.JSON() directly for errors.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a service-layer error onto the API error envelope.
func SendServiceError(c echo.Context, err error) error {
	code := errors.CodeFor(err)
	if code == errors.SystemInternalError {
		return SendSystemError(c, err)
	}
	return SendError(c, code, errors.WithMessage(errors.MessageFor(err)))
}
