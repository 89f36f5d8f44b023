package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/personnel-system/internal/api/metrics"
	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// RequireAuthenticated rejects anonymous and disabled principals with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil || p.Disabled {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireWrite admits only principals holding a privileged write authority.
func RequireWrite(perms ports.PermissionEvaluator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil || p.Disabled {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !perms.CanWrite(p) {
				metrics.PermissionDecisionsTotal.WithLabelValues("write", "deny").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			metrics.PermissionDecisionsTotal.WithLabelValues("write", "allow").Inc()
			return next(c)
		}
	}
}

// RequireResourceAccess admits privileged readers and owners of the resource
// addressed by the named path parameter.
func RequireResourceAccess(perms ports.PermissionEvaluator, kind domain.ResourceKind, idParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil || p.Disabled {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !perms.CanAccessResource(c.Request().Context(), p, kind, c.Param(idParam)) {
				metrics.PermissionDecisionsTotal.WithLabelValues("resource", "deny").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			metrics.PermissionDecisionsTotal.WithLabelValues("resource", "allow").Inc()
			return next(c)
		}
	}
}
