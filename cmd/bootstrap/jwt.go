package bootstrap

import (
	"airvoucher-admin/internal/pkg/config"
	"airvoucher-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTValidator,
	),
)

func NewJWTValidator(cfg config.Config) *jwt.Validator {
	if len(cfg.JWT.Secret) < 32 {
		panic("JWT_SECRET must be at least 32 bytes")
	}
	return jwt.NewValidator(cfg.JWT.Secret, cfg.JWT.Issuer)
}
