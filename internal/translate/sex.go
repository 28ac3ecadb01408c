package translate

import "strings"

// SexCode lowercases a sex option.
func SexCode(sex string) string {
	return strings.ToLower(strings.TrimSpace(sex))
}
