package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// AuthService implements sign-up, sign-in and sign-out. Tokens carry
// identity only; the role is re-resolved from the profile on every request
// so an admin-side role change takes effect without re-authentication.
type AuthService struct {
	users     ports.UserRepository
	profiles  ports.ProfileRepository
	tokens    ports.TokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	tokens ports.TokenStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		profiles:  profiles,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// SignUp registers a new user and creates the matching profile with the
// default client role. The display name falls back to the local part of
// the email when none is supplied.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	fullName := in.FullName
	if fullName == "" {
		fullName = domain.DefaultFullName(in.Email)
	}

	// One profile per user id; upsert so a retried sign-up cannot
	// duplicate it.
	profile := &domain.Profile{
		ID:        created.ID,
		Email:     created.Email,
		FullName:  fullName,
		Role:      domain.RoleClient,
		CreatedAt: now,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		// Without a profile the account can neither sign in nor register
		// again; remove the identity so the email is free for a retry.
		if delErr := s.users.Delete(ctx, created.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("user_id", created.ID).Msg("orphaned identity cleanup failed")
		}
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("profile_id", profile.ID).Msg("user registered")
	return &ports.AuthResult{Token: token, Profile: profile}, nil
}

// SignIn authenticates the credentials and returns a fresh token plus the
// caller's profile.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same answer as a wrong password; the response must not
			// disclose whether the account exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, Profile: profile}, nil
}

// SignOut revokes the presented token for the remainder of its lifetime.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.ErrInvalidCredentials
	}

	ttl := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}

	if err := s.tokens.Revoke(ctx, token, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
