package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/api/metrics"
	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

const principalKey = "principal"

// AuthContext resolves the bearer token into a request-scoped principal.
// It never rejects a request: missing, invalid or unresolvable tokens leave
// the request anonymous and the authorization guards decide from there.
// The user and their roles are re-resolved on every request — no caching —
// so role changes and deactivation take effect immediately.
func AuthContext(
	tokens ports.TokenService,
	directory ports.UserDirectory,
	persons ports.PersonDirectory,
	log zerolog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if p := resolvePrincipal(c, tokens, directory, persons, log); p != nil {
				c.Set(principalKey, p)
			}
			return next(c)
		}
	}
}

// Principal returns the principal attached by AuthContext, or nil for an
// anonymous request.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

func resolvePrincipal(
	c echo.Context,
	tokens ports.TokenService,
	directory ports.UserDirectory,
	persons ports.PersonDirectory,
	log zerolog.Logger,
) (p *domain.Principal) {
	// Authentication must never abort the pipeline; anything unexpected
	// falls through to anonymous.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("panic while resolving principal")
			p = nil
		}
	}()

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}
	token := parts[1]

	if !tokens.Validate(token) {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		log.Debug().Msg("bearer token rejected")
		return nil
	}

	userID, err := tokens.ExtractUserID(token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		log.Debug().Err(err).Msg("token subject extraction failed")
		return nil
	}

	ctx := c.Request().Context()
	user, err := directory.FindForAuthenticationByID(ctx, userID)
	if err == domain.ErrUserNotFound {
		metrics.TokenValidationsTotal.WithLabelValues("unknown_user").Inc()
		log.Warn().Str("user_id", userID).Msg("token subject no longer exists")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("user resolution failed")
		return nil
	}

	// The person link is optional; a failed lookup only disables ownership
	// checks for this request.
	personID := ""
	if person, err := persons.FindByUserID(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("person lookup failed")
	} else if person != nil {
		personID = person.ID
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return domain.NewPrincipal(user, personID)
}
