package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/regcode"
)

// allocationMaxAttempts bounds the optimistic retry loop: the candidate
// sequence is bumped once per collision, so five attempts cover five
// concurrent allocations racing for the same (school, cohort year).
const allocationMaxAttempts = 5

// RegistrationAllocator allocates staff registration numbers optimistically:
// the candidate sequence comes from a plain count, the insert carries it, and
// the store's unique constraint rejects the losers of any race. There is no
// reservation step and no dedicated counter table.
type RegistrationAllocator struct {
	staffRepo repositories.IStaffRepository
	logger    zerolog.Logger
}

// NewRegistrationAllocator creates a new RegistrationAllocator
func NewRegistrationAllocator(staffRepo repositories.IStaffRepository, logger zerolog.Logger) *RegistrationAllocator {
	return &RegistrationAllocator{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// AllocateAndInsert fills in the record's registration number and inserts it,
// retrying past duplicate-number conflicts. The record's SchoolID and
// CohortYear must already be set; on success its ID and RegistrationNo are
// populated and the registration number is returned.
func (a *RegistrationAllocator) AllocateAndInsert(ctx context.Context, school *models.School, record *models.StaffRecord) (string, error) {
	abbr := regcode.Abbreviate(school.Name)

	count, err := a.staffRepo.CountBySchoolAndYear(ctx, record.SchoolID, record.CohortYear)
	if err != nil {
		return "", fmt.Errorf("%w: counting staff records: %v", apperrors.ErrStaffInsert, err)
	}

	seq := count + 1
	for attempt := 1; attempt <= allocationMaxAttempts; attempt++ {
		record.RegistrationNo = regcode.Format(abbr, record.CohortYear, seq)

		id, insErr := a.staffRepo.Insert(ctx, record)
		if insErr == nil {
			record.ID = id
			return record.RegistrationNo, nil
		}
		if !errors.Is(insErr, repositories.ErrDuplicateRegistrationNo) {
			return "", fmt.Errorf("%w: %v", apperrors.ErrStaffInsert, insErr)
		}

		a.logger.Warn().
			Str("registrationNo", record.RegistrationNo).
			Int("attempt", attempt).
			Msg("Registration number collision, retrying with next sequence")
		seq++
	}

	return "", apperrors.ErrAllocationExhausted
}
