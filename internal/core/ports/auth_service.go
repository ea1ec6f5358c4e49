package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// SignUpInput carries the registration form fields. FullName is optional;
// when empty the local part of the email is used.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// AuthResult is returned after a successful sign-up or sign-in.
type AuthResult struct {
	Token   string
	Profile *domain.Profile
}

// AuthService implements the session operations: registration, login and
// token revocation.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	// SignOut revokes the presented token for the remainder of its lifetime.
	SignOut(ctx context.Context, token string) error
}
