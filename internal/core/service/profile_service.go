package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// ProfileService resolves roles and maintains profile records.
type ProfileService struct {
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, log: log}
}

// ResolveRole fetches the caller's profile and validates its role column
// against the closed enum. A fetch failure is logged and surfaced so the
// caller can degrade to "no role known".
func (s *ProfileService) ResolveRole(ctx context.Context, profileID string) (domain.Role, error) {
	profile, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		s.log.Error().Err(err).Str("profile_id", profileID).Msg("role resolution failed")
		return "", err
	}

	role, err := domain.ParseRole(string(profile.Role))
	if err != nil {
		s.log.Error().Str("profile_id", profileID).Str("role", string(profile.Role)).Msg("profile carries unknown role")
		return "", err
	}
	return role, nil
}

func (s *ProfileService) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	return s.profiles.FindByID(ctx, profileID)
}

// UpdateFullName changes the caller's own display name and returns the
// refreshed profile.
func (s *ProfileService) UpdateFullName(ctx context.Context, profileID, fullName string) (*domain.Profile, error) {
	if fullName == "" {
		return nil, &domain.ValidationError{Field: "full_name", Reason: "must not be empty"}
	}
	if err := s.profiles.UpdateFullName(ctx, profileID, fullName); err != nil {
		return nil, err
	}
	return s.profiles.FindByID(ctx, profileID)
}

// ListByRole returns id and display name for every profile with the given
// role, for the assignee and client pickers.
func (s *ProfileService) ListByRole(ctx context.Context, role string) ([]ports.ProfileRef, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profiles.ListByRole(ctx, parsed)
	if err != nil {
		return nil, err
	}

	refs := make([]ports.ProfileRef, 0, len(profiles))
	for _, p := range profiles {
		refs = append(refs, ports.ProfileRef{ID: p.ID, FullName: p.FullName})
	}
	return refs, nil
}
