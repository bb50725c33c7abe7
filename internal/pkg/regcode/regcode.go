// Package regcode derives human-readable staff registration numbers of the
// form {ABBR}/T/{YEAR}/{SEQ}, e.g. "GPA/T/2024/007".
package regcode

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultSchoolCode is used when a school name yields no abbreviation letters.
const DefaultSchoolCode = "SCH"

// Abbreviate derives a short school code from its display name: the uppercased
// first letter of every whitespace-separated word. Non-letter runes are stripped
// before a word's initial is taken, so "St. Mary Secondary" yields "SMS" and
// "2nd Avenue College" yields "NAC". A name with no letters at all falls back
// to DefaultSchoolCode.
func Abbreviate(schoolName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(schoolName) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	if b.Len() == 0 {
		return DefaultSchoolCode
	}
	return b.String()
}

// Format renders a registration number from its parts. The sequence is
// zero-padded to three digits; sequences past 999 widen naturally.
func Format(abbr, cohortYear string, seq int) string {
	return fmt.Sprintf("%s/T/%s/%03d", abbr, cohortYear, seq)
}

// Initials returns the uppercased initials of a staff member's names,
// e.g. ("Alice", "Mugisha") -> "A.M".
func Initials(firstName, lastName string) string {
	parts := make([]string, 0, 2)
	for _, name := range []string{firstName, lastName} {
		for _, r := range strings.TrimSpace(name) {
			if unicode.IsLetter(r) {
				parts = append(parts, string(unicode.ToUpper(r)))
				break
			}
		}
	}
	return strings.Join(parts, ".")
}
