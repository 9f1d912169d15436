// Package idgen generates random URL-safe identifiers.
package idgen

import (
	"crypto/rand"

	"accounts/internal/domain/service"

	"github.com/pkg/errors"
)

// alphabet is the URL-safe character set, 64 symbols.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"

// mask keeps the low 6 bits; with 64 symbols every masked value is in range, so no bias.
const mask = byte(len(alphabet) - 1)

type randomGenerator struct{}

// NewRandomGenerator returns an IDGenerator backed by crypto/rand.
func NewRandomGenerator() service.IDGenerator {
	return &randomGenerator{}
}

// Generate returns a random identifier of exactly length characters.
func (g *randomGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("invalid identifier length %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	for i := range buf {
		buf[i] = alphabet[buf[i]&mask]
	}

	return string(buf), nil
}
