package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
)

// IProfileRepository defines the profile store operations used by services
type IProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetByIdentityID(ctx context.Context, identityID int64) (*models.Profile, error)
}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// Upsert inserts the profile or, when one already exists for the identity,
// overwrites its email, full name, role and school (last writer wins). The
// identity_id unique constraint is what keeps the relation 1:1.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	now := time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO profiles (identity_id, email, full_name, role, school_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (identity_id) DO UPDATE
		SET email = EXCLUDED.email,
		    full_name = EXCLUDED.full_name,
		    role = EXCLUDED.role,
		    school_id = EXCLUDED.school_id,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`,
		profile.IdentityID, profile.Email, profile.FullName, profile.Role, profile.SchoolID, now).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error upserting profile: %w", err)
	}

	return profile, nil
}

// GetByIdentityID retrieves the profile bound to an identity
func (r *ProfileRepository) GetByIdentityID(ctx context.Context, identityID int64) (*models.Profile, error) {
	profile := &models.Profile{}
	err := r.db.QueryRow(ctx, `
		SELECT id, identity_id, email, full_name, role, school_id, created_at, updated_at
		FROM profiles
		WHERE identity_id = $1`,
		identityID).Scan(
		&profile.ID, &profile.IdentityID, &profile.Email, &profile.FullName,
		&profile.Role, &profile.SchoolID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting profile by identity id: %w", err)
	}

	return profile, nil
}
