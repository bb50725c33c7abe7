package models

import (
	"time"
)

// Identity defines an authenticatable account based on the 'identities' table.
// An identity is addressed by its email and is independent of any role or
// school membership; those live on the Profile.
type Identity struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier assigned by the store
	Email       string     `json:"email" db:"email" example:"a.mugisha@example.org"`                        // Email address, unique case-insensitively
	Password    string     `json:"-" db:"password"`                                                         // Hashed credential (excluded from JSON)
	DisplayName string     `json:"displayName" db:"display_name" example:"Alice Mugisha"`                   // Display metadata
	IsVerified  bool       `json:"isVerified" db:"is_verified" example:"true"`                              // Provisioned identities are created pre-verified
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the identity was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp when the identity was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
}
