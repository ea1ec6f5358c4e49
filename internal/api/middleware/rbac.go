package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/api/metrics"
	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// RBAC enforces role-based access control. The decision is taken on every
// request against the freshly resolved role, never cached, so a role change
// is honored immediately.
//
// An empty allowedRoles set admits any caller whose role resolved. A caller
// with no resolved role is always denied.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if role == "" {
				metrics.AccessDeniedTotal.WithLabelValues("unknown").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if len(allowed) > 0 {
				if _, ok := allowed[role]; !ok {
					metrics.AccessDeniedTotal.WithLabelValues(string(role)).Inc()
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
			}
			return next(c)
		}
	}
}
