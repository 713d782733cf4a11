package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/handler/httperr"
	"airvoucher-admin/internal/pkg/cookie"
	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken       = errs.New("access token required")
	errInsufficientRole   = errs.New("insufficient permissions")
	errMissingAuthContext = errs.New("role check used without authentication")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey   = "admin_id"
	ctxAdminRoleKey = "admin_role"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		adminID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminIDKey, adminID)
		c.Set(ctxAdminRoleKey, role)
		c.Set(ctxClaimsKey, map[string]any{
			"admin_id": adminID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole admin.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAdminRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// cookie first: the dashboard sets it after the provider's sign-in redirect
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

func GetAdminRole(c *gin.Context) (admin.Role, bool) {
	adminRole, exists := c.Get(ctxAdminRoleKey)
	if !exists {
		return "", false
	}

	role, ok := adminRole.(admin.Role)
	return role, ok
}
