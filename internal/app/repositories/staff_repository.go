package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/pkg/dberrors"
	"github.com/bkalungi/shulebase/internal/pkg/logger"
)

// ErrDuplicateRegistrationNo is returned when an insert loses the race for a
// registration number. The allocator treats it as a signal to bump the
// sequence and retry; every other insert error is final.
var ErrDuplicateRegistrationNo = errors.New("registration number already taken")

// IStaffRepository defines the staff record operations used by services
type IStaffRepository interface {
	CountBySchoolAndYear(ctx context.Context, schoolID int64, cohortYear string) (int, error)
	Insert(ctx context.Context, record *models.StaffRecord) (int64, error)
}

// StaffRepository handles staff record database operations
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CountBySchoolAndYear counts existing staff records for a school and cohort
// year. The count feeds the next candidate sequence number; it is only an
// approximation under concurrency, which the insert's unique constraint corrects.
func (r *StaffRepository) CountBySchoolAndYear(ctx context.Context, schoolID int64, cohortYear string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("staff_records").
		Where(squirrel.Eq{"school_id": schoolID, "cohort_year": cohortYear}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count staff records SQL")
		return 0, fmt.Errorf("failed to build count staff records query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("schoolID", schoolID).Str("cohortYear", cohortYear).Msg("Error counting staff records")
		return 0, fmt.Errorf("error counting staff records: %w", err)
	}

	return count, nil
}

// Insert creates a staff record carrying its candidate registration number.
// The store's unique constraint on (school_id, registration_no) is the sole
// arbiter between concurrent allocations.
func (r *StaffRepository) Insert(ctx context.Context, record *models.StaffRecord) (int64, error) {
	sql, args, err := r.sb.Insert("staff_records").
		Columns("registration_no", "identity_id", "first_name", "last_name", "gender", "cohort_year", "school_id", "initials", "created_at").
		Values(record.RegistrationNo, record.IdentityID, record.FirstName, record.LastName,
			record.Gender, record.CohortYear, record.SchoolID, record.Initials, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert staff record SQL")
		return 0, fmt.Errorf("failed to build insert staff record query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_records_school_id_registration_no_key") {
			return 0, ErrDuplicateRegistrationNo
		}
		logger.Error().Err(err).Str("registrationNo", record.RegistrationNo).Msg("Error inserting staff record")
		return 0, fmt.Errorf("error inserting staff record: %w", err)
	}

	return id, nil
}
