package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@school.ug", NormalizeEmail("  Jane@School.UG "))
	assert.Equal(t, "jane@school.ug", NormalizeEmail("jane@school.ug"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@school.ug"))
	assert.True(t, IsValidEmail("j+staff@sub.school.ac.ug"))
	assert.False(t, IsValidEmail("jane@school"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidCohortYear(t *testing.T) {
	assert.True(t, IsValidCohortYear("2024"))
	assert.True(t, IsValidCohortYear("1999"))
	assert.False(t, IsValidCohortYear("24"))
	assert.False(t, IsValidCohortYear("20245"))
	assert.False(t, IsValidCohortYear("202a"))
	assert.False(t, IsValidCohortYear(""))
}
