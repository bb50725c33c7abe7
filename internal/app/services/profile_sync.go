package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
)

// ProfileSynchronizer keeps the role/school membership record of an identity
// in step with the latest provisioning request. The upsert is keyed on
// identity_id and last-writer-wins, so repeating a call with the same
// arguments is a no-op and the whole saga stays safely replayable.
type ProfileSynchronizer struct {
	profileRepo repositories.IProfileRepository
	logger      zerolog.Logger
}

// NewProfileSynchronizer creates a new ProfileSynchronizer
func NewProfileSynchronizer(profileRepo repositories.IProfileRepository, logger zerolog.Logger) *ProfileSynchronizer {
	return &ProfileSynchronizer{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Sync upserts the profile bound to the identity
func (s *ProfileSynchronizer) Sync(ctx context.Context, identityID int64, email, fullName string, role models.RoleType, schoolID *int64) (*models.Profile, error) {
	profile, err := s.profileRepo.Upsert(ctx, &models.Profile{
		IdentityID: identityID,
		Email:      email,
		FullName:   fullName,
		Role:       role,
		SchoolID:   schoolID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProfileWrite, err)
	}

	s.logger.Debug().Int64("identityId", identityID).Str("role", string(role)).Msg("Profile synchronized")
	return profile, nil
}
