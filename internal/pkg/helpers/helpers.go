// Package helpers contains small shared utility functions.
package helpers

import "time"

// ParseDuration parses a duration string, falling back to a default on error
func ParseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
