//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens shaped like the auth provider's, signed with the test secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, adminID uuid.UUID, role admin.Role) string {
	t.Helper()
	return h.sign(t, adminID, string(role), time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, adminID uuid.UUID, role admin.Role) string {
	t.Helper()
	return h.sign(t, adminID, string(role), time.Now().Add(-time.Minute))
}

// GenerateTokenWithRole allows roles the API does not know about.
func (h *JWTHelper) GenerateTokenWithRole(t *testing.T, adminID uuid.UUID, role string) string {
	t.Helper()
	return h.sign(t, adminID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) sign(t *testing.T, adminID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		AppRole: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   adminID.String(),
			Issuer:    h.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
