package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// ProfileRef is the lightweight view used to populate assignee and client
// pickers: id and display name only.
type ProfileRef struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// ProfileService exposes role resolution and profile maintenance.
type ProfileService interface {
	// ResolveRole derives the caller's role from their profile row. It is
	// invoked on every authenticated request so role changes take effect
	// without re-authentication.
	ResolveRole(ctx context.Context, profileID string) (domain.Role, error)
	Get(ctx context.Context, profileID string) (*domain.Profile, error)
	UpdateFullName(ctx context.Context, profileID, fullName string) (*domain.Profile, error)
	ListByRole(ctx context.Context, role string) ([]ProfileRef, error)
}
