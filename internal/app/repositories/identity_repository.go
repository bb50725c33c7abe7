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
	"github.com/bkalungi/shulebase/internal/pkg/dberrors"
)

// IIdentityRepository defines the identity store operations used by services.
// Emails are expected to be normalized (trimmed, lowercased) by the caller.
type IIdentityRepository interface {
	Create(ctx context.Context, identity *models.Identity) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	GetByID(ctx context.Context, id int64) (*models.Identity, error)
	UpdateCredentials(ctx context.Context, id int64, hashedPassword, displayName string) error
	UpdateLastLogin(ctx context.Context, id int64) error
}

// IdentityRepository handles identity database operations
type IdentityRepository struct {
	db *pgxpool.Pool
}

// NewIdentityRepository creates a new IdentityRepository
func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

// Create inserts a new identity and returns its store-assigned id.
func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO identities (email, password, display_name, is_verified, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		identity.Email, identity.Password, identity.DisplayName, identity.IsVerified, identity.IsActive).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "identities_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating identity: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves an identity by its normalized email, matched
// case-insensitively against the stored value.
func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	identity := &models.Identity{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, display_name, is_verified, is_active, created_at, updated_at, last_login_at
		FROM identities
		WHERE lower(email) = lower($1)`,
		email).Scan(
		&identity.ID, &identity.Email, &identity.Password, &identity.DisplayName,
		&identity.IsVerified, &identity.IsActive, &identity.CreatedAt, &identity.UpdatedAt, &identity.LastLoginAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("error getting identity by email: %w", err)
	}

	return identity, nil
}

// GetByID retrieves an identity by ID
func (r *IdentityRepository) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	identity := &models.Identity{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, display_name, is_verified, is_active, created_at, updated_at, last_login_at
		FROM identities
		WHERE id = $1`,
		id).Scan(
		&identity.ID, &identity.Email, &identity.Password, &identity.DisplayName,
		&identity.IsVerified, &identity.IsActive, &identity.CreatedAt, &identity.UpdatedAt, &identity.LastLoginAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("error getting identity by id: %w", err)
	}

	return identity, nil
}

// UpdateCredentials rotates the stored credential and display metadata of an
// existing identity (the password-rotation path of identity resolution).
func (r *IdentityRepository) UpdateCredentials(ctx context.Context, id int64, hashedPassword, displayName string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE identities
		SET password = $1, display_name = $2, updated_at = $3
		WHERE id = $4`,
		hashedPassword, displayName, time.Now(), id)

	if err != nil {
		return fmt.Errorf("error updating identity credentials: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIdentityNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login time
func (r *IdentityRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE identities
		SET last_login_at = $1
		WHERE id = $2`,
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}
