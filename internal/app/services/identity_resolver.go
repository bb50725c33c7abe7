package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/auth"
	"github.com/bkalungi/shulebase/internal/pkg/validation"
)

// IdentityResolution is the outcome of resolving an email to an identity
type IdentityResolution struct {
	IdentityID int64
	Created    bool
}

// IdentityResolver finds the identity for an email or creates one. It never
// creates a second identity for an email already present: lookup and creation
// both go through the normalized (trimmed, lowercased) form.
type IdentityResolver struct {
	identityRepo repositories.IIdentityRepository
	logger       zerolog.Logger
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(identityRepo repositories.IIdentityRepository, logger zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{
		identityRepo: identityRepo,
		logger:       logger,
	}
}

// Resolve returns the identity id for the email, creating a pre-verified
// identity when none exists. On reuse the stored credential and display
// metadata are rotated to the supplied values.
func (s *IdentityResolver) Resolve(ctx context.Context, email, password, displayName string) (IdentityResolution, error) {
	email = validation.NormalizeEmail(email)
	if email == "" {
		return IdentityResolution{}, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	identity, err := s.identityRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if password != "" {
			hashed, hashErr := auth.HashPassword(password)
			if hashErr != nil {
				return IdentityResolution{}, fmt.Errorf("%w: hashing credential: %v", apperrors.ErrIdentityStore, hashErr)
			}
			if updErr := s.identityRepo.UpdateCredentials(ctx, identity.ID, hashed, displayName); updErr != nil {
				return IdentityResolution{}, fmt.Errorf("%w: rotating credential: %v", apperrors.ErrIdentityStore, updErr)
			}
		}
		s.logger.Debug().Int64("identityId", identity.ID).Str("email", email).Msg("Reusing existing identity")
		return IdentityResolution{IdentityID: identity.ID, Created: false}, nil

	case errors.Is(err, apperrors.ErrIdentityNotFound):
		if len(password) < validation.PasswordMinLength {
			return IdentityResolution{}, fmt.Errorf("%w: password must be at least %d characters",
				apperrors.ErrInvalidPassword, validation.PasswordMinLength)
		}

		hashed, hashErr := auth.HashPassword(password)
		if hashErr != nil {
			return IdentityResolution{}, fmt.Errorf("%w: hashing credential: %v", apperrors.ErrIdentityStore, hashErr)
		}

		id, createErr := s.identityRepo.Create(ctx, &models.Identity{
			Email:       email,
			Password:    hashed,
			DisplayName: displayName,
			IsVerified:  true, // provisioned identities skip the confirmation round-trip
			IsActive:    true,
		})
		if createErr != nil {
			return IdentityResolution{}, fmt.Errorf("%w: creating identity: %v", apperrors.ErrIdentityStore, createErr)
		}
		if id <= 0 {
			// Creation reported success without an identifier. Treating this
			// as success would orphan the rest of the saga.
			return IdentityResolution{}, apperrors.ErrIdentityIncomplete
		}

		s.logger.Info().Int64("identityId", id).Str("email", email).Msg("Created new identity")
		return IdentityResolution{IdentityID: id, Created: true}, nil

	default:
		return IdentityResolution{}, fmt.Errorf("%w: looking up identity: %v", apperrors.ErrIdentityStore, err)
	}
}
