package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// ProfileRepository defines persistence for application profiles.
type ProfileRepository interface {
	// Upsert writes the profile keyed by its id, creating or replacing it.
	// Sign-up uses this so a retried registration cannot produce a second
	// profile for the same user id.
	Upsert(ctx context.Context, p *domain.Profile) error
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	// FindByIDs returns the profiles for the given ids, keyed by id.
	// Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error)
	UpdateFullName(ctx context.Context, id, fullName string) error
}
