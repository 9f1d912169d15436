package context

import (
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal stores the verified caller on echo.Context.
const KeyPrincipal ContextKey = "principal"

// Principal is the caller identified by a verified bearer token.
type Principal struct {
	Subject string
	Roles   entity.Roles
}

// SetPrincipal stores the verified caller.
func SetPrincipal(c echo.Context, p *Principal) {
	c.Set(string(KeyPrincipal), p)
}

// GetPrincipal returns the verified caller, if any.
func GetPrincipal(c echo.Context) (*Principal, bool) {
	p, ok := c.Get(string(KeyPrincipal)).(*Principal)

	return p, ok && p != nil
}
