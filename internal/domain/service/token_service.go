package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims read from bearer tokens presented to the service.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens issued by an external identity provider.
// The service never issues tokens itself.
type TokenVerifier interface {
	// Enabled reports whether token verification is configured.
	Enabled() bool

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
