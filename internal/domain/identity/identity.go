// Package identity holds the syntactic format rules for user identity
// fields. Uniqueness and persistence are the account system's concern, not
// this package's: every check here is a pure predicate over the string.
package identity

import "strings"

// Username and display-name length bounds, inclusive.
const (
	MinUsernameLen    = 3
	MaxUsernameLen    = 20
	MaxDisplayNameLen = 50
)

// ValidUsername reports whether s is an acceptable login username:
// non-blank, 3-20 characters, ASCII letters, digits and underscores only.
func ValidUsername(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if len(s) < MinUsernameLen || len(s) > MaxUsernameLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUsernameByte(s[i]) {
			return false
		}
	}
	return true
}

func isUsernameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	default:
		return false
	}
}

// ValidDisplayName reports whether s is an acceptable display name:
// non-blank and at most 50 characters.
func ValidDisplayName(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return len(s) >= 1 && len(s) <= MaxDisplayNameLen
}

// NormalizeUsername canonicalizes a username for lookups. The account system
// matches usernames case-insensitively, so lookups go through this form.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
