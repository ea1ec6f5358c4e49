package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// UserRepository defines persistence for raw auth identities.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes an identity. Used to roll a registration back when
	// the profile write fails, so the email becomes free again.
	Delete(ctx context.Context, id string) error
}
