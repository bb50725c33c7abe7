package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	IdentityRepository *IdentityRepository
	ProfileRepository  *ProfileRepository
	SchoolRepository   *SchoolRepository
	StaffRepository    *StaffRepository
	TokenRepository    *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		IdentityRepository: NewIdentityRepository(db),
		ProfileRepository:  NewProfileRepository(db),
		SchoolRepository:   NewSchoolRepository(db),
		StaffRepository:    NewStaffRepository(db),
		TokenRepository:    NewTokenRepository(db),
	}
}
