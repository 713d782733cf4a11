package usecase

import (
	"airvoucher-admin/internal/domain/admin"
	"airvoucher-admin/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, admin.Role, error)
}

type tokenValidatorImpl struct {
	validator *jwt.Validator
}

func NewTokenValidator(validator *jwt.Validator) TokenValidator {
	return &tokenValidatorImpl{
		validator: validator,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, admin.Role, error) {
	claims, err := t.validator.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	adminID, err := claims.AdminID()
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := admin.NewRole(claims.AppRole)
	if err != nil {
		return uuid.Nil, "", err
	}

	return adminID, role, nil
}
