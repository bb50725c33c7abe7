package dto

import "github.com/bkalungi/shulebase/internal/app/models"

// ProvisionStaffRequest carries the input of the full provisioning saga.
// Cohort year is kept as a string so "0042" style values survive intact;
// its 4-digit shape is enforced by the binding tags before any store call.
type ProvisionStaffRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	Password   string          `json:"password" binding:"required,min=6"`
	Role       models.RoleType `json:"role" binding:"required"`
	SchoolID   int64           `json:"schoolId" binding:"required,min=1"`
	FirstName  string          `json:"firstName" binding:"required"`
	LastName   string          `json:"lastName" binding:"required"`
	Gender     string          `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE"`
	CohortYear string          `json:"cohortYear" binding:"required,len=4,numeric"`
}

// ProvisionStaffResponse is returned after a successful saga run
type ProvisionStaffResponse struct {
	IdentityID     int64  `json:"identityId" example:"42"`
	RegistrationNo string `json:"registrationNo" example:"GPA/T/2024/001"`
	IdentityCreated bool  `json:"identityCreated" example:"true"`
}

// CreateStaffAccountRequest carries the input of the identity-only variant.
// Role is optional and defaults to TEACHER.
type CreateStaffAccountRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.RoleType `json:"role,omitempty"`
	SchoolID int64           `json:"schoolId" binding:"required,min=1"`
}

// StaffAccountResponse is returned by the identity-only variant
type StaffAccountResponse struct {
	IdentityID int64 `json:"identityId" example:"42"`
}
