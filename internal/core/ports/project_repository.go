package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// ListProjectsFilter scopes a project query. ClientEmail is empty for the
// "all" scope and set to the caller's account email for the client scope.
type ListProjectsFilter struct {
	ClientEmail string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects matching filter, soonest deadline first.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
