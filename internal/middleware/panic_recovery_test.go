package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
	logs *bytes.Buffer
	mw   echo.MiddlewareFunc
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.mw = PanicRecovery(slog.New(slog.NewJSONHandler(s.logs, nil)))
}

func (s *PanicRecoveryTestSuite) serve(traceID string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.NotPanics(func() {
		_ = s.mw(next)(c)
	})
	return rec
}

func (s *PanicRecoveryTestSuite) TestRecoversWithSystemError() {
	testCases := []struct {
		name      string
		traceID   string
		panicWith interface{}
		wantTrace string
	}{
		{"string panic", "trace-1", "boom", "trace-1"},
		{"error value", "trace-2", errors.ErrConflict, "trace-2"},
		{"int panic", "trace-3", 42, "trace-3"},
		{"nil panic", "trace-4", nil, "trace-4"},
		{"missing trace id", "", "boom", "unknown"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.serve(tc.traceID, func(echo.Context) error {
				panic(tc.panicWith)
			})

			s.Equal(http.StatusInternalServerError, rec.Code)

			var resp errors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(string(errors.SystemInternalError), resp.Error.Code)
			s.Equal(tc.wantTrace, resp.Error.TraceID)
		})
	}
}

func (s *PanicRecoveryTestSuite) TestLogsPanicDetails() {
	s.serve("trace-log", func(echo.Context) error {
		panic("ledger exploded")
	})

	var record map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &record))
	s.Equal("Panic recovered", record["msg"])
	s.Equal("trace-log", record["trace_id"])
	s.Equal("ledger exploded", record["panic"])
	s.Equal("/api/v1/ledger/entries", record["path"])
	s.Equal(http.MethodPost, record["method"])
	s.NotEmpty(record["stack_trace"])
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := s.serve("trace-committed", func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("after write")
	})

	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPassThrough() {
	rec := s.serve("", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	s.Equal(http.StatusNoContent, rec.Code)
	s.Zero(s.logs.Len())
}
