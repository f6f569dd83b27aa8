package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-admin/internal/config"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite defines the test suite for the bearer token middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	jwtConfig    *config.JWTConfig
	tokenService services.TokenServiceInterface
	user         *models.AdminUser
}

func (s *AuthMiddlewareTestSuite) SetupSuite() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.jwtConfig = &config.JWTConfig{
		AccessTokenDuration: 15 * time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "restaurant-admin-test",
	}
	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.user = &models.AdminUser{ID: uuid.New(), Username: "operator"}
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) serve(authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/Restaurant", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	called := false
	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	s.NoError(handler(c))

	return rec, c, called
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	rec, c, called := s.serve("Bearer " + token)

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("operator", c.Get(AdminUsernameContextKey))
	s.Equal(s.user.ID.String(), c.Get(AdminUserIDContextKey))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_MissingHeader() {
	rec, _, called := s.serve("")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeFailure(s.T(), rec).Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_MalformedHeader() {
	rec, _, called := s.serve("Basic dXNlcjpwYXNz")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	response := decodeFailure(s.T(), rec)
	s.Equal("AUTH_004", response.Code)
	s.NotEmpty(response.Details)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_GarbageToken() {
	rec, _, called := s.serve("Bearer not.a.jwt")

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", decodeFailure(s.T(), rec).Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ExpiredToken() {
	expired := *s.jwtConfig
	expired.AccessTokenDuration = -time.Minute
	token, _, err := services.NewTokenService(&expired).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	rec, _, called := s.serve("Bearer " + token)

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", decodeFailure(s.T(), rec).Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth_ForeignIssuer() {
	foreign := *s.jwtConfig
	foreign.Issuer = "someone-else"
	token, _, err := services.NewTokenService(&foreign).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	rec, _, called := s.serve("Bearer " + token)

	s.False(called)
	s.Equal("AUTH_004", decodeFailure(s.T(), rec).Code)
}
