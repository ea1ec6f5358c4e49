package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

type stubProjectRepo struct {
	projects    []*domain.Project
	deleteCalls int
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.projects = append(r.projects, &clone)
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if filter.ClientEmail != "" && p.ClientEmail != filter.ClientEmail {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	for i, existing := range r.projects {
		if existing.ID == p.ID {
			clone := *p
			r.projects[i] = &clone
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func projectFixtures() *stubProjectRepo {
	return &stubProjectRepo{projects: []*domain.Project{
		{ID: "p1", Name: "Website relaunch", ClientName: "Acme", ClientEmail: "acme@example.com", Budget: 5000},
		{ID: "p2", Name: "Mobile app", ClientName: "Globex", ClientEmail: "globex@example.com", Budget: 12000},
	}}
}

func TestProjectService_ListProjects_AdminSeesAll(t *testing.T) {
	svc := NewProjectService(projectFixtures(), zerolog.Nop())

	projects, err := svc.ListProjects(context.Background(), ports.Caller{ProfileID: "admin-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("ListProjects returned error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
}

func TestProjectService_ListProjects_ClientScopedByEmail(t *testing.T) {
	svc := NewProjectService(projectFixtures(), zerolog.Nop())

	projects, err := svc.ListProjects(context.Background(),
		ports.Caller{ProfileID: "client-1", Email: "acme@example.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("ListProjects returned error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].ClientEmail != "acme@example.com" {
		t.Fatalf("client saw a foreign project: %+v", projects[0])
	}
}

func TestProjectService_CreateProject_ClientEmailForced(t *testing.T) {
	repo := projectFixtures()
	svc := NewProjectService(repo, zerolog.Nop())

	project, err := svc.CreateProject(context.Background(),
		ports.Caller{ProfileID: "client-1", Email: "acme@example.com", Role: domain.RoleClient},
		ports.ProjectInput{Name: "Rebrand", ClientEmail: "globex@example.com"})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}
	if project.ClientEmail != "acme@example.com" {
		t.Fatalf("client could attribute project to %q", project.ClientEmail)
	}
	if project.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestProjectService_CreateProject_AdminKeepsSubmittedEmail(t *testing.T) {
	svc := NewProjectService(projectFixtures(), zerolog.Nop())

	project, err := svc.CreateProject(context.Background(),
		ports.Caller{ProfileID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin},
		ports.ProjectInput{Name: "Rebrand", ClientEmail: "globex@example.com"})
	if err != nil {
		t.Fatalf("CreateProject returned error: %v", err)
	}
	if project.ClientEmail != "globex@example.com" {
		t.Fatalf("expected submitted email preserved, got %q", project.ClientEmail)
	}
}

func TestProjectService_CreateProject_Validation(t *testing.T) {
	svc := NewProjectService(projectFixtures(), zerolog.Nop())

	_, err := svc.CreateProject(context.Background(),
		ports.Caller{ProfileID: "admin-1", Role: domain.RoleAdmin},
		ports.ProjectInput{Name: ""})
	if _, ok := err.(*domain.ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestProjectService_UpdateProject_ClientOwnProject(t *testing.T) {
	repo := projectFixtures()
	svc := NewProjectService(repo, zerolog.Nop())

	project, err := svc.UpdateProject(context.Background(),
		ports.Caller{ProfileID: "client-1", Email: "acme@example.com", Role: domain.RoleClient},
		"p1", ports.ProjectInput{Name: "Website relaunch v2", ClientEmail: "globex@example.com"})
	if err != nil {
		t.Fatalf("UpdateProject returned error: %v", err)
	}
	if project.Name != "Website relaunch v2" {
		t.Fatalf("update not applied: %+v", project)
	}
	if project.ClientEmail != "acme@example.com" {
		t.Fatalf("client reassigned project to %q", project.ClientEmail)
	}
}

func TestProjectService_UpdateProject_ClientForeignForbidden(t *testing.T) {
	svc := NewProjectService(projectFixtures(), zerolog.Nop())

	_, err := svc.UpdateProject(context.Background(),
		ports.Caller{ProfileID: "client-1", Email: "acme@example.com", Role: domain.RoleClient},
		"p2", ports.ProjectInput{Name: "Takeover"})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_UpdateProject_NotFound(t *testing.T) {
	svc := NewProjectService(projectFixtures(), zerolog.Nop())

	_, err := svc.UpdateProject(context.Background(),
		ports.Caller{ProfileID: "admin-1", Role: domain.RoleAdmin},
		"missing", ports.ProjectInput{Name: "x"})
	if err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_DeleteProject_AdminOnly(t *testing.T) {
	repo := projectFixtures()
	svc := NewProjectService(repo, zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleEmployee, domain.RoleClient} {
		err := svc.DeleteProject(context.Background(), ports.Caller{ProfileID: "u1", Role: role}, "p1")
		if err != domain.ErrForbidden {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("storage must not be touched on forbidden delete")
	}

	if err := svc.DeleteProject(context.Background(), ports.Caller{ProfileID: "admin-1", Role: domain.RoleAdmin}, "p1"); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if len(repo.projects) != 1 {
		t.Fatalf("expected 1 project left, got %d", len(repo.projects))
	}
}
