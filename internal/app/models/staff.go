package models

import "time"

// StaffRecord defines a teacher enrollment based on the 'staff_records' table.
// RegistrationNo is allocated once at insert time and immutable afterwards;
// it is unique per school, enforced by the store's unique constraint.
type StaffRecord struct {
	ID             int64     `json:"id" db:"id"`
	RegistrationNo string    `json:"registrationNo" db:"registration_no" example:"GPA/T/2024/001"`
	IdentityID     int64     `json:"identityId" db:"identity_id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Gender         string    `json:"gender,omitempty" db:"gender"`
	CohortYear     string    `json:"cohortYear" db:"cohort_year"`
	SchoolID       int64     `json:"schoolId" db:"school_id"`
	Initials       string    `json:"initials" db:"initials"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	Identity *Identity `json:"identity,omitempty"` // Relation, no db tag
	School   *School   `json:"school,omitempty"`   // Relation, no db tag
}
