package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/regcode"
	"github.com/bkalungi/shulebase/internal/pkg/validation"
)

// ProvisioningService orchestrates staff provisioning
type ProvisioningService interface {
	ProvisionTeacher(ctx context.Context, req *dto.ProvisionStaffRequest) (*dto.ProvisionStaffResponse, error)
	CreateStaffAccount(ctx context.Context, req *dto.CreateStaffAccountRequest) (*dto.StaffAccountResponse, error)
}

// provisioningService runs the saga against two independently-consistent
// stores with no cross-store transaction. Steps execute strictly in order;
// a failure aborts the remaining steps but never rolls back completed ones.
// Identity resolution and profile sync are idempotent, so a caller retrying
// the whole request after a partial failure converges on the same state; the
// staff record insert is the single non-idempotent, uniquely-keyed step.
type provisioningService struct {
	resolver     *IdentityResolver
	synchronizer *ProfileSynchronizer
	allocator    *RegistrationAllocator
	schoolRepo   repositories.ISchoolRepository
	logger       zerolog.Logger
}

// NewProvisioningService creates a new ProvisioningService
func NewProvisioningService(
	identityRepo repositories.IIdentityRepository,
	profileRepo repositories.IProfileRepository,
	schoolRepo repositories.ISchoolRepository,
	staffRepo repositories.IStaffRepository,
	logger zerolog.Logger,
) ProvisioningService {
	return &provisioningService{
		resolver:     NewIdentityResolver(identityRepo, logger),
		synchronizer: NewProfileSynchronizer(profileRepo, logger),
		allocator:    NewRegistrationAllocator(staffRepo, logger),
		schoolRepo:   schoolRepo,
		logger:       logger,
	}
}

// ProvisionTeacher runs the full saga: validate, load the school, resolve the
// identity, synchronize the profile, then allocate a registration number
// inline with the staff record insert.
func (s *provisioningService) ProvisionTeacher(ctx context.Context, req *dto.ProvisionStaffRequest) (*dto.ProvisionStaffResponse, error) {
	if err := validateProvisionRequest(req); err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.GetByID(ctx, req.SchoolID)
	if err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(req.FirstName + " " + req.LastName)
	resolution, err := s.resolver.Resolve(ctx, req.Email, req.Password, fullName)
	if err != nil {
		return nil, err
	}

	schoolID := school.ID
	if _, err := s.synchronizer.Sync(ctx, resolution.IdentityID,
		validation.NormalizeEmail(req.Email), fullName, req.Role, &schoolID); err != nil {
		return nil, err
	}

	record := &models.StaffRecord{
		IdentityID: resolution.IdentityID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		CohortYear: req.CohortYear,
		SchoolID:   school.ID,
		Initials:   regcode.Initials(req.FirstName, req.LastName),
	}
	registrationNo, err := s.allocator.AllocateAndInsert(ctx, school, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("identityId", resolution.IdentityID).
		Str("registrationNo", registrationNo).
		Int64("schoolId", school.ID).
		Bool("identityCreated", resolution.Created).
		Msg("Staff member provisioned")

	return &dto.ProvisionStaffResponse{
		IdentityID:      resolution.IdentityID,
		RegistrationNo:  registrationNo,
		IdentityCreated: resolution.Created,
	}, nil
}

// CreateStaffAccount runs the identity-only variant: resolve the identity and
// synchronize its profile, without allocating a staff record. A profile sync
// failure after the identity was created surfaces as an error carrying the
// identity id, under the same non-200 convention as the full saga.
func (s *provisioningService) CreateStaffAccount(ctx context.Context, req *dto.CreateStaffAccountRequest) (*dto.StaffAccountResponse, error) {
	if err := validateStaffAccountRequest(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleTeacher
	}

	school, err := s.schoolRepo.GetByID(ctx, req.SchoolID)
	if err != nil {
		return nil, err
	}

	email := validation.NormalizeEmail(req.Email)
	displayName := strings.SplitN(email, "@", 2)[0]
	resolution, err := s.resolver.Resolve(ctx, req.Email, req.Password, displayName)
	if err != nil {
		return nil, err
	}

	schoolID := school.ID
	if _, err := s.synchronizer.Sync(ctx, resolution.IdentityID, email, displayName, role, &schoolID); err != nil {
		// The identity write already happened and stays in place; report the
		// partial outcome so the caller can retry or reconcile.
		return nil, apperrors.NewCustomError(apperrors.ErrProfileWrite,
			fmt.Sprintf("identity %d created but profile sync failed", resolution.IdentityID)).
			WithDetails(map[string]interface{}{"identityId": resolution.IdentityID})
	}

	s.logger.Info().
		Int64("identityId", resolution.IdentityID).
		Str("role", string(role)).
		Bool("identityCreated", resolution.Created).
		Msg("Staff account created")

	return &dto.StaffAccountResponse{IdentityID: resolution.IdentityID}, nil
}

// validateProvisionRequest enforces the saga's preconditions before any
// external call is made.
func validateProvisionRequest(req *dto.ProvisionStaffRequest) error {
	email := validation.NormalizeEmail(req.Email)
	switch {
	case email == "":
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	case !validation.IsValidEmail(email):
		return fmt.Errorf("%w: email format is invalid", apperrors.ErrValidationFailed)
	case len(req.Password) < validation.PasswordMinLength:
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	case !models.IsValidRole(req.Role):
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	case req.SchoolID <= 0:
		return fmt.Errorf("%w: schoolId is required", apperrors.ErrValidationFailed)
	case strings.TrimSpace(req.FirstName) == "":
		return fmt.Errorf("%w: firstName is required", apperrors.ErrValidationFailed)
	case strings.TrimSpace(req.LastName) == "":
		return fmt.Errorf("%w: lastName is required", apperrors.ErrValidationFailed)
	case !validation.IsValidCohortYear(req.CohortYear):
		return fmt.Errorf("%w: cohortYear must be exactly 4 digits", apperrors.ErrValidationFailed)
	}
	return nil
}

func validateStaffAccountRequest(req *dto.CreateStaffAccountRequest) error {
	email := validation.NormalizeEmail(req.Email)
	switch {
	case email == "":
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	case !validation.IsValidEmail(email):
		return fmt.Errorf("%w: email format is invalid", apperrors.ErrValidationFailed)
	case len(req.Password) < validation.PasswordMinLength:
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	case req.Role != "" && !models.IsValidRole(req.Role):
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	case req.SchoolID <= 0:
		return fmt.Errorf("%w: schoolId is required", apperrors.ErrValidationFailed)
	}
	return nil
}
