package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Cohort year pattern - exactly 4 digits
	CohortYearPattern = `^\d{4}$`

	// Password min length for identity creation
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CohortYear *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CohortYear: regexp.MustCompile(CohortYearPattern),
}

// NormalizeEmail trims surrounding whitespace and lowercases an email address.
// Every lookup and creation in the identity store goes through this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether the (already lowercased) email has a valid shape
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidCohortYear reports whether the cohort year is exactly four digits
func IsValidCohortYear(year string) bool {
	return CompiledPatterns.CohortYear.MatchString(year)
}
