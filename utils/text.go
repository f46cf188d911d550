package utils

import "strings"

// TrimToNil trims s and returns nil when nothing is left.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
