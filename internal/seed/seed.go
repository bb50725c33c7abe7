// Package seed creates default records for a fresh installation.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/bkalungi/shulebase/internal/app/models"
	appRepos "github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
)

const (
	defaultAdminEmail    = "admin@shulebase.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates a default school and admin identity if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	identityRepo := appRepos.NewIdentityRepository(dbPool)
	profileRepo := appRepos.NewProfileRepository(dbPool)
	schoolRepo := appRepos.NewSchoolRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default School --- //
	demoSchool := &appModels.School{
		Name:    "Greenhill Primary Academy",
		Motto:   "Knowledge is Light",
		Address: "Kampala",
	}
	_, err := schoolRepo.Create(ctx, demoSchool)
	if err != nil && !errors.Is(err, apperrors.ErrSchoolAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default school")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Default Admin Identity --- //
	_, err = identityRepo.GetByEmail(ctx, defaultAdminEmail)
	switch {
	case err == nil:
		lgr.Info().Msg("Admin identity already exists, skipping creation")
	case errors.Is(err, apperrors.ErrIdentityNotFound):
		lgr.Info().Msg("Creating default admin identity...")

		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, hashErr)
			break
		}

		admin := &appModels.Identity{
			Email:       defaultAdminEmail,
			Password:    string(hashedPassword),
			DisplayName: "System Administrator",
			IsVerified:  true,
			IsActive:    true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		adminID, createErr := identityRepo.Create(ctx, admin)
		if createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating admin identity")
			finalErr = errors.Join(finalErr, createErr)
			break
		}

		_, profileErr := profileRepo.Upsert(ctx, &appModels.Profile{
			IdentityID: adminID,
			Email:      defaultAdminEmail,
			FullName:   "System Administrator",
			Role:       appModels.RoleAdmin,
		})
		if profileErr != nil {
			lgr.Error().Err(profileErr).Msg("Error creating admin profile")
			finalErr = errors.Join(finalErr, profileErr)
			break
		}

		lgr.Info().Int64("adminID", adminID).Msg("Default admin identity created successfully")
	default:
		lgr.Error().Err(err).Msg("Error checking if admin identity exists")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
