package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// ProfileHandler exposes the caller's own profile and the role-filtered
// pickers used by the dashboard forms.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type updateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
}

// Me returns the caller's profile.
//
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/profiles/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Get(c.Request().Context(), caller.ProfileID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMe changes the caller's display name. Nothing else on the profile
// is mutable through this surface; in particular the role column is not.
//
// @Summary      Update own display name
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "New display name"
// @Success      200   {object}  domain.Profile
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/profiles/me [patch]
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.profiles.UpdateFullName(c.Request().Context(), caller.ProfileID, req.FullName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List returns id + display name for every profile with the requested
// role, for the assignee and client pickers.
//
// @Summary      List profiles by role
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  true  "Role to filter by (admin, employee, client)"
// @Success      200   {array}   ports.ProfileRef
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	refs, err := h.profiles.ListByRole(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refs)
}
