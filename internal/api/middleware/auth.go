package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
	"github.com/Thanuja200/Resolve-now/internal/core/service"
)

// identityKey is the echo context key the resolved identity is stored under.
const identityKey = "identity"

// Auth verifies the bearer token on every protected request and attaches the
// resolved identity to the context. Missing, malformed, or failed tokens
// short-circuit with 401 before any handler runs.
func Auth(tokens *service.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity set by Auth, if any.
func IdentityFromContext(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

// SetIdentity attaches an identity to the context. Exposed for handler tests
// that bypass the middleware.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}
