package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/dberrors"
	"github.com/bkalungi/shulebase/internal/pkg/logger"
)

// ISchoolRepository defines the school read/create operations used by services.
// The provisioning saga only ever reads; creation belongs to the settings side.
type ISchoolRepository interface {
	Create(ctx context.Context, school *models.School) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.School, error)
}

// SchoolRepository handles school database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new school
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) (int64, error) {
	sql, args, err := r.sb.Insert("schools").
		Columns("name", "motto", "address").
		Values(school.Name, school.Motto, school.Address).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create school SQL")
		return 0, fmt.Errorf("failed to build create school query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrSchoolAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create school query")
		return 0, fmt.Errorf("error creating school: %w", err)
	}

	return id, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	sql, args, err := r.sb.Select("id", "name", "motto", "address", "created_at").
		From("schools").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get school by ID SQL")
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school := &models.School{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&school.ID, &school.Name, &school.Motto, &school.Address, &school.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}

	return school, nil
}
