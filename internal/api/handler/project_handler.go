package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/api/metrics"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /v1/projects. Admins and employees get every project
// ordered by soonest deadline; clients only projects carrying their email.
//
// @Summary      List projects visible to the caller
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListProjects(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /v1/projects. A client caller's own email always
// ends up on the row regardless of the submitted client_email.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project fields"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), caller, toProjectInput(req))
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(string(caller.Role)).Inc()
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /v1/projects/:id.
//
// @Summary      Replace a project's mutable fields
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project fields"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.UpdateProject(c.Request().Context(), caller, c.Param("id"), toProjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /v1/projects/:id. Admin only.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProject(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProjectInput(req projectRequest) ports.ProjectInput {
	return ports.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	}
}
