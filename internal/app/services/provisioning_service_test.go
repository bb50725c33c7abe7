package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
)

// fakeIdentityRepo is an in-memory IIdentityRepository that counts calls.
type fakeIdentityRepo struct {
	identities             map[string]*models.Identity
	nextID                 int64
	createCalls            int
	getByEmailCalls        int
	updateCredentialsCalls int
	createErr              error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{identities: make(map[string]*models.Identity), nextID: 1}
}

func (f *fakeIdentityRepo) Create(ctx context.Context, identity *models.Identity) (int64, error) {
	f.createCalls++
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, exists := f.identities[identity.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	identity.ID = f.nextID
	f.nextID++
	f.identities[identity.Email] = identity
	return identity.ID, nil
}

func (f *fakeIdentityRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	f.getByEmailCalls++
	identity, ok := f.identities[email]
	if !ok {
		return nil, apperrors.ErrIdentityNotFound
	}
	return identity, nil
}

func (f *fakeIdentityRepo) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	for _, identity := range f.identities {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, apperrors.ErrIdentityNotFound
}

func (f *fakeIdentityRepo) UpdateCredentials(ctx context.Context, id int64, hashedPassword, displayName string) error {
	f.updateCredentialsCalls++
	for _, identity := range f.identities {
		if identity.ID == id {
			identity.Password = hashedPassword
			identity.DisplayName = displayName
			return nil
		}
	}
	return apperrors.ErrIdentityNotFound
}

func (f *fakeIdentityRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	return nil
}

// fakeProfileRepo is an in-memory IProfileRepository keyed on identity id.
type fakeProfileRepo struct {
	profiles    map[int64]*models.Profile
	upsertCalls int
	upsertErr   error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int64]*models.Profile)}
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	f.upsertCalls++
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	stored := *profile
	if existing, ok := f.profiles[profile.IdentityID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = int64(len(f.profiles) + 1)
	}
	f.profiles[profile.IdentityID] = &stored
	return &stored, nil
}

func (f *fakeProfileRepo) GetByIdentityID(ctx context.Context, identityID int64) (*models.Profile, error) {
	profile, ok := f.profiles[identityID]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return profile, nil
}

// fakeSchoolRepo is an in-memory ISchoolRepository.
type fakeSchoolRepo struct {
	schools    map[int64]*models.School
	getByCalls int
}

func newFakeSchoolRepo(schools ...*models.School) *fakeSchoolRepo {
	repo := &fakeSchoolRepo{schools: make(map[int64]*models.School)}
	for _, school := range schools {
		repo.schools[school.ID] = school
	}
	return repo
}

func (f *fakeSchoolRepo) Create(ctx context.Context, school *models.School) (int64, error) {
	school.ID = int64(len(f.schools) + 1)
	f.schools[school.ID] = school
	return school.ID, nil
}

func (f *fakeSchoolRepo) GetByID(ctx context.Context, id int64) (*models.School, error) {
	f.getByCalls++
	school, ok := f.schools[id]
	if !ok {
		return nil, apperrors.ErrSchoolNotFound
	}
	return school, nil
}

// fakeStaffRepo enforces the (school_id, registration_no) unique constraint
// in memory, optionally rejecting every insert to exhaust the retry loop.
type fakeStaffRepo struct {
	records         []models.StaffRecord
	taken           map[string]bool
	nextID          int64
	countCalls      int
	insertCalls     int
	alwaysDuplicate bool
	countErr        error
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{taken: make(map[string]bool), nextID: 1}
}

func staffKey(schoolID int64, registrationNo string) string {
	return fmt.Sprintf("%d|%s", schoolID, registrationNo)
}

// reserve marks a registration number as taken without adding a record,
// simulating a concurrent writer that won the race.
func (f *fakeStaffRepo) reserve(schoolID int64, registrationNo string) {
	f.taken[staffKey(schoolID, registrationNo)] = true
}

func (f *fakeStaffRepo) CountBySchoolAndYear(ctx context.Context, schoolID int64, cohortYear string) (int, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, record := range f.records {
		if record.SchoolID == schoolID && record.CohortYear == cohortYear {
			count++
		}
	}
	return count, nil
}

func (f *fakeStaffRepo) Insert(ctx context.Context, record *models.StaffRecord) (int64, error) {
	f.insertCalls++
	if f.alwaysDuplicate {
		return 0, repositories.ErrDuplicateRegistrationNo
	}
	key := staffKey(record.SchoolID, record.RegistrationNo)
	if f.taken[key] {
		return 0, repositories.ErrDuplicateRegistrationNo
	}
	f.taken[key] = true
	id := f.nextID
	f.nextID++
	stored := *record
	stored.ID = id
	f.records = append(f.records, stored)
	return id, nil
}

type provisioningFixture struct {
	identityRepo *fakeIdentityRepo
	profileRepo  *fakeProfileRepo
	schoolRepo   *fakeSchoolRepo
	staffRepo    *fakeStaffRepo
	service      ProvisioningService
}

func newProvisioningFixture(schools ...*models.School) *provisioningFixture {
	f := &provisioningFixture{
		identityRepo: newFakeIdentityRepo(),
		profileRepo:  newFakeProfileRepo(),
		schoolRepo:   newFakeSchoolRepo(schools...),
		staffRepo:    newFakeStaffRepo(),
	}
	f.service = NewProvisioningService(f.identityRepo, f.profileRepo, f.schoolRepo, f.staffRepo, zerolog.Nop())
	return f
}

func validProvisionRequest() *dto.ProvisionStaffRequest {
	return &dto.ProvisionStaffRequest{
		Email:      "jane.doe@school.ug",
		Password:   "s3cret!",
		Role:       models.RoleTeacher,
		SchoolID:   1,
		FirstName:  "Jane",
		LastName:   "Doe",
		Gender:     "FEMALE",
		CohortYear: "2024",
	}
}

func greenhillSchool() *models.School {
	return &models.School{ID: 1, Name: "Greenhill Primary Academy"}
}

func TestProvisionTeacher_FirstTeacherOfCohort(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	resp, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.NoError(t, err)

	assert.Equal(t, "GPA/T/2024/001", resp.RegistrationNo)
	assert.True(t, resp.IdentityCreated)
	assert.Equal(t, int64(1), resp.IdentityID)

	profile, err := f.profileRepo.GetByIdentityID(context.Background(), resp.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, profile.Role)
	assert.Equal(t, "Jane Doe", profile.FullName)
	require.NotNil(t, profile.SchoolID)
	assert.Equal(t, int64(1), *profile.SchoolID)

	require.Len(t, f.staffRepo.records, 1)
	assert.Equal(t, "J.D", f.staffRepo.records[0].Initials)
}

func TestProvisionTeacher_SequenceAdvancesPerCohort(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	first, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.NoError(t, err)
	assert.Equal(t, "GPA/T/2024/001", first.RegistrationNo)

	second := validProvisionRequest()
	second.Email = "john.okello@school.ug"
	second.FirstName = "John"
	second.LastName = "Okello"
	resp, err := f.service.ProvisionTeacher(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, "GPA/T/2024/002", resp.RegistrationNo)

	// A different cohort year starts its own sequence
	third := validProvisionRequest()
	third.Email = "mary.atim@school.ug"
	third.CohortYear = "2025"
	resp, err = f.service.ProvisionTeacher(context.Background(), third)
	require.NoError(t, err)
	assert.Equal(t, "GPA/T/2025/001", resp.RegistrationNo)
}

func TestProvisionTeacher_ReusesExistingIdentity(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	first, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.NoError(t, err)
	require.True(t, first.IdentityCreated)

	// Same email provisioned again with a corrected name
	again := validProvisionRequest()
	again.FirstName = "Janet"
	resp, err := f.service.ProvisionTeacher(context.Background(), again)
	require.NoError(t, err)

	assert.False(t, resp.IdentityCreated)
	assert.Equal(t, first.IdentityID, resp.IdentityID)
	assert.Equal(t, "GPA/T/2024/002", resp.RegistrationNo)
	assert.Equal(t, 1, f.identityRepo.createCalls)
	assert.Equal(t, 1, f.identityRepo.updateCredentialsCalls)

	// The profile follows the latest request
	profile, err := f.profileRepo.GetByIdentityID(context.Background(), resp.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, "Janet Doe", profile.FullName)

	// Both staff records point at the single identity
	require.Len(t, f.staffRepo.records, 2)
	assert.Equal(t, resp.IdentityID, f.staffRepo.records[0].IdentityID)
	assert.Equal(t, resp.IdentityID, f.staffRepo.records[1].IdentityID)
}

func TestProvisionTeacher_EmailNormalizedBeforeLookup(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	req := validProvisionRequest()
	req.Email = "  Jane.Doe@School.UG "
	resp, err := f.service.ProvisionTeacher(context.Background(), req)
	require.NoError(t, err)

	_, ok := f.identityRepo.identities["jane.doe@school.ug"]
	assert.True(t, ok, "identity stored under normalized email")

	profile, err := f.profileRepo.GetByIdentityID(context.Background(), resp.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@school.ug", profile.Email)
}

func TestProvisionTeacher_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.ProvisionStaffRequest)
	}{
		{"missing email", func(req *dto.ProvisionStaffRequest) { req.Email = " " }},
		{"malformed email", func(req *dto.ProvisionStaffRequest) { req.Email = "not-an-email" }},
		{"short password", func(req *dto.ProvisionStaffRequest) { req.Password = "abc" }},
		{"unknown role", func(req *dto.ProvisionStaffRequest) { req.Role = "JANITOR" }},
		{"missing school", func(req *dto.ProvisionStaffRequest) { req.SchoolID = 0 }},
		{"missing first name", func(req *dto.ProvisionStaffRequest) { req.FirstName = "  " }},
		{"missing last name", func(req *dto.ProvisionStaffRequest) { req.LastName = "" }},
		{"bad cohort year", func(req *dto.ProvisionStaffRequest) { req.CohortYear = "24" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProvisioningFixture(greenhillSchool())
			req := validProvisionRequest()
			tt.mutate(req)

			_, err := f.service.ProvisionTeacher(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

			// Nothing downstream is touched on a validation failure
			assert.Zero(t, f.schoolRepo.getByCalls)
			assert.Zero(t, f.identityRepo.getByEmailCalls)
			assert.Zero(t, f.identityRepo.createCalls)
			assert.Zero(t, f.profileRepo.upsertCalls)
			assert.Zero(t, f.staffRepo.insertCalls)
		})
	}
}

func TestProvisionTeacher_SchoolNotFound(t *testing.T) {
	f := newProvisioningFixture() // no schools

	_, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)

	// The saga aborts before any identity work
	assert.Zero(t, f.identityRepo.getByEmailCalls)
	assert.Zero(t, f.identityRepo.createCalls)
	assert.Zero(t, f.profileRepo.upsertCalls)
}

func TestProvisionTeacher_RetriesPastRegistrationCollisions(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	// Concurrent writers already hold 001 and 002 without appearing in the count
	f.staffRepo.reserve(1, "GPA/T/2024/001")
	f.staffRepo.reserve(1, "GPA/T/2024/002")

	resp, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.NoError(t, err)

	assert.Equal(t, "GPA/T/2024/003", resp.RegistrationNo)
	assert.Equal(t, 3, f.staffRepo.insertCalls)
	assert.Equal(t, 1, f.staffRepo.countCalls, "count is taken once, not per attempt")
}

func TestProvisionTeacher_AllocationExhausted(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())
	f.staffRepo.alwaysDuplicate = true

	_, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAllocationExhausted)
	assert.Equal(t, allocationMaxAttempts, f.staffRepo.insertCalls)

	// Identity and profile writes from the earlier steps stay in place
	assert.Equal(t, 1, f.identityRepo.createCalls)
	assert.Equal(t, 1, f.profileRepo.upsertCalls)
}

func TestProvisionTeacher_StaffInsertFailure(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())
	f.staffRepo.countErr = errors.New("connection reset")

	_, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStaffInsert)
}

func TestProvisionTeacher_RetryAfterPartialFailureConverges(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	// First attempt dies at the profile step, after the identity was created
	f.profileRepo.upsertErr = errors.New("profile store down")
	_, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProfileWrite)
	assert.Equal(t, 1, f.identityRepo.createCalls)
	assert.Empty(t, f.staffRepo.records)

	// The client retries the whole request once the store recovers
	f.profileRepo.upsertErr = nil
	resp, err := f.service.ProvisionTeacher(context.Background(), validProvisionRequest())
	require.NoError(t, err)

	assert.False(t, resp.IdentityCreated, "retry reuses the identity from the failed attempt")
	assert.Equal(t, "GPA/T/2024/001", resp.RegistrationNo)
	assert.Equal(t, 1, f.identityRepo.createCalls)
	assert.Len(t, f.profileRepo.profiles, 1)
	assert.Len(t, f.staffRepo.records, 1)
}

func TestCreateStaffAccount_DefaultsRoleToTeacher(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	resp, err := f.service.CreateStaffAccount(context.Background(), &dto.CreateStaffAccountRequest{
		Email:    "bursar@school.ug",
		Password: "s3cret!",
		SchoolID: 1,
	})
	require.NoError(t, err)

	profile, err := f.profileRepo.GetByIdentityID(context.Background(), resp.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, profile.Role)
	assert.Equal(t, "bursar", profile.FullName)

	// No staff record is allocated on the account-only path
	assert.Zero(t, f.staffRepo.insertCalls)
}

func TestCreateStaffAccount_ExplicitRole(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())

	resp, err := f.service.CreateStaffAccount(context.Background(), &dto.CreateStaffAccountRequest{
		Email:    "bursar@school.ug",
		Password: "s3cret!",
		Role:     models.RoleFinance,
		SchoolID: 1,
	})
	require.NoError(t, err)

	profile, err := f.profileRepo.GetByIdentityID(context.Background(), resp.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFinance, profile.Role)
}

func TestCreateStaffAccount_ProfileSyncFailureReportsIdentity(t *testing.T) {
	f := newProvisioningFixture(greenhillSchool())
	f.profileRepo.upsertErr = errors.New("profile store down")

	_, err := f.service.CreateStaffAccount(context.Background(), &dto.CreateStaffAccountRequest{
		Email:    "bursar@school.ug",
		Password: "s3cret!",
		SchoolID: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProfileWrite)

	// The error carries the orphaned identity id for reconciliation
	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	require.NotNil(t, customErr.Details)
	assert.Equal(t, int64(1), customErr.Details["identityId"])

	// The identity write is not rolled back
	assert.Equal(t, 1, f.identityRepo.createCalls)
	_, lookupErr := f.identityRepo.GetByEmail(context.Background(), "bursar@school.ug")
	assert.NoError(t, lookupErr)
}

func TestCreateStaffAccount_SchoolNotFound(t *testing.T) {
	f := newProvisioningFixture()

	_, err := f.service.CreateStaffAccount(context.Background(), &dto.CreateStaffAccountRequest{
		Email:    "bursar@school.ug",
		Password: "s3cret!",
		SchoolID: 42,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
	assert.Zero(t, f.identityRepo.createCalls)
}
