package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/api/metrics"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /v1/tasks. Admins and employees see every task; clients
// only the tasks they created.
//
// @Summary      List tasks visible to the caller
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.TaskView
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListTasks(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create handles POST /v1/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task fields"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), caller, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Remarks:     req.Remarks,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, task)
}

// Update handles PATCH /v1/tasks/:id. Only the assignee or an admin may
// mutate a task.
//
// @Summary      Update task status, remarks or assignment
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  domain.Task
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.UpdateTask(c.Request().Context(), caller, c.Param("id"), ports.UpdateTaskInput{
		Status:     req.Status,
		Remarks:    req.Remarks,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}
