package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
	Logger   *slog.Logger
}

// AuthMiddleware guards routes with bearer tokens issued by an external identity provider.
// When no verifier secret is configured every request passes through.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	if !params.Verifier.Enabled() {
		params.Logger.Warn("Bearer token verification disabled; administrative routes are unauthenticated")
	}

	return &AuthMiddleware{verifier: params.Verifier, logger: params.Logger}
}

// Authenticate validates the bearer token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.verifier.Enabled() {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.verifier.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
			Subject: claims.Subject,
			Roles:   entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireRole rejects callers that lack role. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.verifier.Enabled() {
				return next(c)
			}

			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}
			if !principal.Roles.Contains(role) {
				return errors.WithStack(domainerrors.ErrForbidden.WithDetails("requires role " + role.String()))
			}

			return next(c)
		}
	}
}
