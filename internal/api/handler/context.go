package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Thanuja200/Resolve-now/internal/api/middleware"
	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A missing identity on a protected
// route means the middleware did not run; reject with 401 rather than
// proceeding with a zero value.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
