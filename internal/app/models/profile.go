package models

import (
	"time"
)

// Profile defines the role and school membership bound 1:1 to an Identity,
// based on the 'profiles' table. It is maintained by upsert keyed on
// identity_id, so re-running a provisioning request overwrites it in place.
type Profile struct {
	ID         int64     `json:"id" db:"id"`
	IdentityID int64     `json:"identityId" db:"identity_id"`
	Email      string    `json:"email" db:"email"` // denormalized copy of the identity's email
	FullName   string    `json:"fullName" db:"full_name"`
	Role       RoleType  `json:"role" db:"role"`
	SchoolID   *int64    `json:"schoolId,omitempty" db:"school_id"` // nullable until the profile is linked to a school
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	Identity *Identity `json:"identity,omitempty"` // Relation, no db tag
	School   *School   `json:"school,omitempty"`   // Relation, no db tag
}
