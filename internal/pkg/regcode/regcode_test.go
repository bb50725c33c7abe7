package regcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name       string
		schoolName string
		want       string
	}{
		{"multi word", "Greenhill Primary Academy", "GPA"},
		{"single word", "Greenhill", "G"},
		{"punctuated word", "St. Mary Secondary", "SMS"},
		{"leading digits", "2nd Avenue College", "NAC"},
		{"lowercase input", "hilltop junior school", "HJS"},
		{"extra whitespace", "  Greenhill   Primary  ", "GP"},
		{"empty name", "", DefaultSchoolCode},
		{"whitespace only", "   ", DefaultSchoolCode},
		{"no letters", "123 456", DefaultSchoolCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Abbreviate(tt.schoolName))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "GPA/T/2024/001", Format("GPA", "2024", 1))
	assert.Equal(t, "GPA/T/2024/042", Format("GPA", "2024", 42))
	assert.Equal(t, "SCH/T/2025/999", Format("SCH", "2025", 999))

	// Sequences past three digits widen instead of truncating
	assert.Equal(t, "GPA/T/2024/1000", Format("GPA", "2024", 1000))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "A.M", Initials("Alice", "Mugisha"))
	assert.Equal(t, "A.M", Initials("  alice ", "mugisha"))
	assert.Equal(t, "A", Initials("Alice", ""))
	assert.Equal(t, "", Initials("", ""))
}
