package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) okHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, next echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	// SendError writes the response and returns nil
	s.NoError(mw(next)(s.e.NewContext(req, rec)))
	return rec
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	user := &models.User{ID: uuid.New(), Email: "test@example.com"}
	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService), func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}, "Bearer "+token)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Rejections() {
	testCases := []struct {
		name       string
		authHeader string
		wantCode   errors.ErrorCode
	}{
		{"missing header", "", errors.AuthMissingToken},
		{"no bearer prefix", "InvalidToken", errors.AuthInvalidTokenFormat},
		{"empty bearer", "Bearer ", errors.AuthInvalidTokenFormat},
		{"malformed jwt", "Bearer invalid.jwt.token", errors.AuthInvalidTokenFormat},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.serve(RequireAuth(s.tokenService), s.okHandler(), tc.authHeader)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal(string(tc.wantCode), s.errorCode(rec))
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expired := s.createTokenService(-time.Minute)

	token, _, err := expired.GenerateAccessToken(&models.User{ID: uuid.New(), Email: "test@example.com"})
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(expired), s.okHandler(), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	other := s.createTokenService(time.Hour)

	token, _, err := other.GenerateAccessToken(&models.User{ID: uuid.New(), Email: "test@example.com"})
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService), s.okHandler(), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}
