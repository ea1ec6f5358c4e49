package ports

import (
	"context"
	"time"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// ProjectInput carries the fields for creating or replacing a project.
// For client callers the service overrides ClientEmail with the caller's
// own account email.
type ProjectInput struct {
	Name        string
	Description string
	Status      string
	ClientName  string
	ClientEmail string
	Budget      float64
	Deadline    *time.Time
}

// ProjectService exposes role-scoped project operations.
type ProjectService interface {
	// ListProjects returns all projects ordered by soonest deadline for
	// admin/employee callers, and only the caller's projects for clients.
	ListProjects(ctx context.Context, caller Caller) ([]*domain.Project, error)
	CreateProject(ctx context.Context, caller Caller, in ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, caller Caller, id string, in ProjectInput) (*domain.Project, error)
	// DeleteProject is restricted to admins; other roles are rejected
	// before the repository is reached.
	DeleteProject(ctx context.Context, caller Caller, id string) error
}
