package service

import (
	"github.com/golang-jwt/jwt/v5"

	"datadex/internal/domain/entity"
)

// TokenService issues and validates the JWT access tokens that carry the
// caller's ledger address and roles.
type TokenService interface {
	// GenerateToken creates an access token whose subject is the address.
	GenerateToken(addr entity.Address, roles []string) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
