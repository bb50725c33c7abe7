package models

// RoleType defines the role bound to a profile
type RoleType string

const (
	RoleAdmin    RoleType = "ADMIN"
	RoleAcademic RoleType = "ACADEMIC"
	RoleTeacher  RoleType = "TEACHER"
	RoleFinance  RoleType = "FINANCE"
	RoleStudent  RoleType = "STUDENT"
	RoleParent   RoleType = "PARENT"
)

// ValidRoles lists every role accepted on provisioning requests
var ValidRoles = []RoleType{
	RoleAdmin,
	RoleAcademic,
	RoleTeacher,
	RoleFinance,
	RoleStudent,
	RoleParent,
}

// IsValidRole reports whether the given value is a known role
func IsValidRole(role RoleType) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
