package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_CorrelatesTraceAcrossLayers(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "honored from header", incoming: "trace-abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", nil)
			if tt.incoming != "" {
				req.Header.Set(TraceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var traceID string
			var correlationID interface{}
			err := RequestID()(func(c echo.Context) error {
				traceID = GetTraceID(c)
				correlationID = c.Request().Context().Value(services.CorrelationIDKey)
				return c.NoContent(http.StatusCreated)
			})(c)
			require.NoError(t, err)

			if tt.incoming == "" {
				assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, traceID)
			} else {
				assert.Equal(t, tt.incoming, traceID)
			}
			assert.Equal(t, traceID, correlationID)
			assert.Equal(t, traceID, rec.Header().Get(TraceIDHeader))
		})
	}
}

func TestGetTraceID_EmptyOutsideMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetTraceID(c))
}
