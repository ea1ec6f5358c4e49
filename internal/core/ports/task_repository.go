package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// ListTasksFilter carries the row-visibility scope for a task query.
// CreatedBy is empty for the "all" scope (admin/employee) and set to the
// caller's profile id for the "own" scope (client).
type ListTasksFilter struct {
	CreatedBy string
}

// TaskRepository defines persistence operations for tasks. There is no
// delete: tasks are never removed in any flow.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks matching filter, newest first.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
}
