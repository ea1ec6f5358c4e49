package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// ProjectService implements role-scoped project operations. Clients only
// ever see and touch projects carrying their own account email, and that
// email is forced server-side on every client write.
type ProjectService struct {
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, log: log}
}

// ListProjects returns all projects ordered by soonest deadline for
// admin/employee callers; clients get only rows whose client_email equals
// their account email.
func (s *ProjectService) ListProjects(ctx context.Context, caller ports.Caller) ([]*domain.Project, error) {
	filter := ports.ListProjectsFilter{}
	if caller.Role == domain.RoleClient {
		filter.ClientEmail = caller.Email
	}
	return s.projects.List(ctx, filter)
}

// CreateProject persists a new project. A client caller cannot attribute
// the project to another client: client_email is overwritten with their
// own email regardless of the submitted value.
func (s *ProjectService) CreateProject(ctx context.Context, caller ports.Caller, in ports.ProjectInput) (*domain.Project, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	clientEmail := in.ClientEmail
	if caller.Role == domain.RoleClient {
		clientEmail = caller.Email
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		ClientName:  in.ClientName,
		ClientEmail: clientEmail,
		Budget:      in.Budget,
		Deadline:    in.Deadline,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.projects.Create(ctx, project); err != nil {
		s.log.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Str("role", string(caller.Role)).Msg("project created")
	return project, nil
}

// UpdateProject replaces the mutable fields of a project. Clients may only
// edit their own projects, and keep their own email on the row.
func (s *ProjectService) UpdateProject(ctx context.Context, caller ports.Caller, id string, in ports.ProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !project.VisibleTo(caller.Role, caller.Email) {
		return nil, domain.ErrForbidden
	}

	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	project.Name = in.Name
	project.Description = in.Description
	project.Status = in.Status
	project.ClientName = in.ClientName
	project.ClientEmail = in.ClientEmail
	project.Budget = in.Budget
	project.Deadline = in.Deadline
	if caller.Role == domain.RoleClient {
		project.ClientEmail = caller.Email
	}

	if err := s.projects.Update(ctx, project); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project. Only admins may delete; every other
// role is rejected here, before the repository is reached.
func (s *ProjectService) DeleteProject(ctx context.Context, caller ports.Caller, id string) error {
	if caller.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to delete project")
		return err
	}

	s.log.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
