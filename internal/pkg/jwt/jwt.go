package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims mirrors the access tokens minted by the hosted auth provider.
// The admin role is carried in a custom claim next to the standard subject.
type Claims struct {
	AppRole string `json:"app_role"`
	jwt.RegisteredClaims
}

// AdminID parses the subject claim, which the auth provider sets to the admin's uuid.
func (c *Claims) AdminID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Validator struct {
	secretKey []byte
	issuer    string
}

func NewValidator(secretKey, issuer string) *Validator {
	return &Validator{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

func (v *Validator) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secretKey, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
