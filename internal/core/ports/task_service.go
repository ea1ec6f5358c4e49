package ports

import (
	"context"
	"time"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// Caller identifies the authenticated profile on whose behalf a service
// operation runs. Role is resolved fresh per request by the middleware.
type Caller struct {
	ProfileID string
	Email     string
	Role      domain.Role
}

// CreateTaskInput carries the fields for a new task. Status and Priority
// are raw strings validated against the closed enums; empty values take
// the defaults (pending, low).
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Remarks     string
	DueDate     *time.Time
	AssignedTo  string
}

// UpdateTaskInput carries a partial task update. Nil fields are left
// untouched.
type UpdateTaskInput struct {
	Status     *string
	Remarks    *string
	AssignedTo *string
}

// TaskView is a task joined with the display names of its creator and
// assignee, as rendered in the dashboard lists.
type TaskView struct {
	domain.Task
	CreatedByName  string `json:"created_by_name,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty"`
}

// TaskService exposes role-scoped task operations.
type TaskService interface {
	// ListTasks returns every task for admin/employee callers and only the
	// caller's own tasks for clients, newest first.
	ListTasks(ctx context.Context, caller Caller) ([]TaskView, error)
	CreateTask(ctx context.Context, caller Caller, in CreateTaskInput) (*domain.Task, error)
	// UpdateTask applies a partial update; only the assignee or an admin
	// may mutate a task.
	UpdateTask(ctx context.Context, caller Caller, taskID string, in UpdateTaskInput) (*domain.Task, error)
}
