// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"accounts/config"
	"accounts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrVerifierDisabled is returned when a token is validated without a configured secret.
var ErrVerifierDisabled = errors.New("token verification is not configured")

// jwtVerifier validates HMAC-signed JWTs against a shared secret.
type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier is the constructor for jwtVerifier.
// An empty secret yields a verifier that reports itself as disabled.
func NewJWTVerifier(cfg *config.Config) service.TokenVerifier {
	var secret string
	if cfg.Auth != nil {
		secret = cfg.Auth.JWTSecret
	}

	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Enabled() bool {
	return len(v.secret) > 0
}

// ValidateToken parses the token, checks the signing method and returns its claims.
func (v *jwtVerifier) ValidateToken(tokenString string) (*service.Claims, error) {
	if !v.Enabled() {
		return nil, ErrVerifierDisabled
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}
