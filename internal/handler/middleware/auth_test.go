//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/handler/middleware"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/pkg/cookie"
	"airvoucher-admin/internal/pkg/jwt"
	"airvoucher-admin/internal/usecase"
	"airvoucher-admin/tests/common/authtest"
	testhttp "airvoucher-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	tokens *authtest.JWTHelper
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.tokens = authtest.NewJWTHelper(cfg.JWT)

	validator := usecase.NewTokenValidator(jwt.NewValidator(cfg.JWT.Secret, cfg.JWT.Issuer))
	auth := middleware.NewAuthMiddleware(validator)

	s.router = gin.New()
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetAdminID(c)
		role, _ := middleware.GetAdminRole(c)
		c.JSON(http.StatusOK, gin.H{"admin_id": id.String(), "role": string(role)})
	}
	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/admins", auth.RequireAuth(), auth.RequireRoleAtLeast(admin.RoleAdmin), whoami)
	s.router.GET("/misconfigured", auth.RequireRoleAtLeast(admin.RoleAdmin), whoami)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	adminID := uuid.New()

	s.Run("success: bearer header", func() {
		token := s.tokens.GenerateToken(s.T(), adminID, admin.RoleSubAdmin)
		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(adminID.String(), body["admin_id"])
		s.Equal("sub_admin", body["role"])
	})

	s.Run("success: cookie wins over header", func() {
		cookieToken := s.tokens.GenerateToken(s.T(), adminID, admin.RoleSuperAdmin)
		headerToken := s.tokens.GenerateToken(s.T(), uuid.New(), admin.RoleSubAdmin)
		rec := testhttp.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: cookieToken}}, headerToken)

		var body map[string]string
		testhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(adminID.String(), body["admin_id"])
		s.Equal("super_admin", body["role"])
	})

	s.Run("error: missing token", func() {
		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: expired token", func() {
		token := s.tokens.CreateExpiredToken(s.T(), adminID, admin.RoleAdmin)
		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: unknown role claim", func() {
		token := s.tokens.GenerateTokenWithRole(s.T(), adminID, "retailer")
		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: token signed with another key", func() {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "another-secret-that-is-long-enough-too"})
		token := other.GenerateToken(s.T(), adminID, admin.RoleAdmin)
		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		testhttp.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: malformed header", func() {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	cases := []struct {
		role   admin.Role
		status int
	}{
		{admin.RoleSubAdmin, http.StatusForbidden},
		{admin.RoleAdmin, http.StatusOK},
		{admin.RoleSuperAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		s.Run(string(tc.role), func() {
			token := s.tokens.GenerateToken(s.T(), uuid.New(), tc.role)
			rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/admins", nil, token)
			s.Equal(tc.status, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: role check without authentication is a server error", func() {
		rec := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
	})
}
