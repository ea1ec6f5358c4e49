package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/api/metrics"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// ResolveRole derives the caller's role from their profile row on every
// request, never from the token. A role edited by an admin therefore takes
// effect on the user's next request without re-authentication.
//
// Resolution failure is not fatal here: the request continues with no role
// set, and the role guard denies it downstream.
func ResolveRole(profiles ports.ProfileService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return next(c)
			}

			role, err := profiles.ResolveRole(c.Request().Context(), userID)
			if err != nil {
				metrics.RoleResolutionFailuresTotal.Inc()
				return next(c)
			}

			c.Set("role", role)
			return next(c)
		}
	}
}
