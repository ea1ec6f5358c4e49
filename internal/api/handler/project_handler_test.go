package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

type stubProjectService struct {
	listFn   func(ctx context.Context, caller ports.Caller) ([]*domain.Project, error)
	createFn func(ctx context.Context, caller ports.Caller, in ports.ProjectInput) (*domain.Project, error)
	updateFn func(ctx context.Context, caller ports.Caller, id string, in ports.ProjectInput) (*domain.Project, error)
	deleteFn func(ctx context.Context, caller ports.Caller, id string) error
}

func (s *stubProjectService) ListProjects(ctx context.Context, caller ports.Caller) ([]*domain.Project, error) {
	return s.listFn(ctx, caller)
}

func (s *stubProjectService) CreateProject(ctx context.Context, caller ports.Caller, in ports.ProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubProjectService) UpdateProject(ctx context.Context, caller ports.Caller, id string, in ports.ProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, caller, id, in)
}

func (s *stubProjectService) DeleteProject(ctx context.Context, caller ports.Caller, id string) error {
	return s.deleteFn(ctx, caller, id)
}

func TestProjectHandler_List(t *testing.T) {
	stub := &stubProjectService{
		listFn: func(_ context.Context, caller ports.Caller) ([]*domain.Project, error) {
			if caller.Email != "acme@example.com" || caller.Role != domain.RoleClient {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			return []*domain.Project{{ID: "p1", Name: "Website relaunch"}}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/projects", "")
	authenticate(c, "client-1", "acme@example.com", domain.RoleClient)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Create(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(_ context.Context, _ ports.Caller, in ports.ProjectInput) (*domain.Project, error) {
			if in.Name != "Rebrand" || in.Budget != 5000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Project{ID: "p1", Name: in.Name, Budget: in.Budget}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/projects", `{"name":"Rebrand","budget":5000}`)
	authenticate(c, "admin-1", "a@example.com", domain.RoleAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProjectHandler_Create_RejectsInvalidPayload(t *testing.T) {
	h := NewProjectHandler(&stubProjectService{})

	for _, body := range []string{
		`{}`,
		`{"name":"x","client_email":"not-an-email"}`,
		`{"name":"x","budget":-1}`,
	} {
		c, _ := newTestContext(t, http.MethodPost, "/v1/projects", body)
		authenticate(c, "admin-1", "a@example.com", domain.RoleAdmin)

		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %v", body, err)
		}
	}
}

func TestProjectHandler_Update(t *testing.T) {
	stub := &stubProjectService{
		updateFn: func(_ context.Context, _ ports.Caller, id string, in ports.ProjectInput) (*domain.Project, error) {
			if id != "p1" || in.Name != "Rebrand v2" {
				t.Fatalf("unexpected args: %s %+v", id, in)
			}
			return &domain.Project{ID: id, Name: in.Name}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/v1/projects/p1", `{"name":"Rebrand v2"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	authenticate(c, "admin-1", "a@example.com", domain.RoleAdmin)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	var deleted string
	stub := &stubProjectService{
		deleteFn: func(_ context.Context, caller ports.Caller, id string) error {
			if caller.Role != domain.RoleAdmin {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			deleted = id
			return nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/projects/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	authenticate(c, "admin-1", "a@example.com", domain.RoleAdmin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "p1" {
		t.Fatalf("expected p1 deleted, got %q", deleted)
	}
}

func TestProjectHandler_Delete_ForbiddenBubblesUp(t *testing.T) {
	stub := &stubProjectService{
		deleteFn: func(context.Context, ports.Caller, string) error {
			return domain.ErrForbidden
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/v1/projects/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	authenticate(c, "emp-1", "e@example.com", domain.RoleEmployee)

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
