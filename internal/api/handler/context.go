package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/personnel-system/internal/api/middleware"
	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the AuthContext middleware
// and fast-fails before any service call. A disabled principal was resolved
// structurally but must not be granted anything, so it is rejected here too.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil || p.Disabled {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
