package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and the
// role resolved per request. Presence of user_id proves the middleware
// ran; the role may legitimately be empty when resolution failed, and the
// role guard has already rejected the request on role-gated routes.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(domain.Role)

	return ports.Caller{ProfileID: userID, Email: email, Role: role}, nil
}
