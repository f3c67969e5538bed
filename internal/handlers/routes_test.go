package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RoutesSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	ledger      *service_mocks.MockLedgerServiceInterface
	syncService *service_mocks.MockSyncServiceInterface
	userID      uuid.UUID
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}

func (s *RoutesSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.syncService = service_mocks.NewMockSyncServiceInterface(s.ctrl)
	s.userID = uuid.New()

	router := &Router{
		Health:        NewHealthCheckHandler(nil, "test"),
		Ledger:        NewLedgerHandler(s.ledger),
		Reports:       NewReportHandler(service_mocks.NewMockReportServiceInterface(s.ctrl)),
		Imports:       NewImportHandler(service_mocks.NewMockImportServiceInterface(s.ctrl)),
		Categories:    NewCategoryHandler(service_mocks.NewMockCategorizerInterface(s.ctrl)),
		Sync:          NewSyncHandler(s.syncService),
		Notifications: NewNotificationHandler(service_mocks.NewMockNotificationServiceInterface(s.ctrl)),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
	}
	router.Register(s.echo, s.stubAuth)
}

func (s *RoutesSuite) TearDownTest() {
	s.ctrl.Finish()
}

// stubAuth accepts any request carrying X-Test-User.
func (s *RoutesSuite) stubAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("X-Test-User") == "" {
			return SendError(c, errors.AuthMissingToken)
		}
		c.Set("user_id", s.userID)
		return next(c)
	}
}

func (s *RoutesSuite) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set("X-Test-User", "1")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RoutesSuite) TestEveryRouteIsRegistered() {
	registered := make(map[string]bool)
	for _, route := range s.echo.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/v1/health",
		"GET /api/v1/metrics",
		"POST /api/v1/provider/callback",
		"POST /api/v1/ledger/entries",
		"GET /api/v1/ledger/entries",
		"GET /api/v1/ledger/entries/:id",
		"PUT /api/v1/ledger/entries/:id",
		"DELETE /api/v1/ledger/entries/:id",
		"GET /api/v1/ledger/balance",
		"GET /api/v1/reports/monthly",
		"GET /api/v1/reports/export",
		"GET /api/v1/reports/insights",
		"POST /api/v1/imports",
		"GET /api/v1/imports/sample",
		"POST /api/v1/categorize",
		"GET /api/v1/categories",
		"GET /api/v1/categories/rules",
		"POST /api/v1/categories/rules",
		"DELETE /api/v1/categories/rules/:id",
		"POST /api/v1/sync/sessions",
		"POST /api/v1/sync/connections/:connectionId/fetch",
		"POST /api/v1/sync/import-all",
		"GET /api/v1/sync/status",
		"GET /api/v1/notifications",
		"POST /api/v1/notifications/:id/read",
	}
	for _, route := range expected {
		s.True(registered[route], route)
	}
}

func (s *RoutesSuite) TestProtectedRoutesRequireAuth() {
	rec := s.do(http.MethodGet, "/api/v1/ledger/balance", "", false)
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.ledger.EXPECT().Balance(gomock.Any(), s.userID).Return(decimal.NewFromInt(42), nil)
	rec = s.do(http.MethodGet, "/api/v1/ledger/balance", "", true)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BalanceResponse
	decodeData(s.T(), rec, &resp)
	s.Equal("42.00", resp.Balance)
}

func (s *RoutesSuite) TestPublicRoutes() {
	s.syncService.EXPECT().HandleCallback(gomock.Any(), dto.SaltEdgeCallback{
		Data: dto.SaltEdgeCallbackData{ConnectionID: "conn-1", CustomerID: "cust-1", Stage: "finish"},
	}).Return(nil)

	rec := s.do(http.MethodPost, "/api/v1/provider/callback",
		`{"data":{"connection_id":"conn-1","customer_id":"cust-1","stage":"finish"}}`, false)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/metrics", "", false)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("# metrics", rec.Body.String())
}
