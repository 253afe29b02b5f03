// Package auth provides the JWT implementation of the token service.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"datadex/config"
	"datadex/internal/domain/entity"
	"datadex/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. Tokens carry the caller's ledger address as the
// subject and its roles as a claim, so authorization stays stateless.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    time.Minute * 15,
	}, nil
}

// GenerateToken creates an access token whose subject is the ledger address.
func (s *jwtService) GenerateToken(addr entity.Address, roles []string) (string, error) {
	claims := jwt.MapClaims{
		"sub": addr.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.accessTTL).Unix(),
	}
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}
