package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bkalungi/shulebase/internal/app/models"
	"github.com/bkalungi/shulebase/internal/app/models/dto"
	"github.com/bkalungi/shulebase/internal/app/repositories"
	"github.com/bkalungi/shulebase/internal/pkg/apperrors"
	"github.com/bkalungi/shulebase/internal/pkg/regcode"
)

// SchoolService handles school settings. The provisioning saga treats schools
// as read-only; creation lives here.
type SchoolService interface {
	CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error)
	GetSchoolByID(ctx context.Context, id int64) (*dto.SchoolResponse, error)
}

type schoolService struct {
	schoolRepo repositories.ISchoolRepository
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(schoolRepo repositories.ISchoolRepository) SchoolService {
	return &schoolService{schoolRepo: schoolRepo}
}

// CreateSchool creates a new school
func (s *schoolService) CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	school := &models.School{
		Name:    name,
		Motto:   req.Motto,
		Address: req.Address,
	}
	id, err := s.schoolRepo.Create(ctx, school)
	if err != nil {
		return nil, err
	}
	school.ID = id

	return toSchoolResponse(school), nil
}

// GetSchoolByID retrieves a school by ID
func (s *schoolService) GetSchoolByID(ctx context.Context, id int64) (*dto.SchoolResponse, error) {
	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSchoolResponse(school), nil
}

func toSchoolResponse(school *models.School) *dto.SchoolResponse {
	return &dto.SchoolResponse{
		ID:           school.ID,
		Name:         school.Name,
		Abbreviation: regcode.Abbreviate(school.Name),
		Motto:        school.Motto,
		Address:      school.Address,
	}
}
