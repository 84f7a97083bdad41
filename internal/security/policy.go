// Package security implements the platform's credential primitives: the
// password acceptance policy and the Argon2id password hasher.
package security

import "strings"

// specialChars is the fixed set of characters that satisfy the
// special-character requirement of the password policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// IsValidPassword reports whether candidate satisfies the platform password
// policy: at least 8 characters, with at least one uppercase ASCII letter,
// one lowercase ASCII letter, one digit, and one character from
// specialChars.
//
// The same predicate gates both registration and password reset; the two
// flows must never diverge on what counts as an acceptable password.
func IsValidPassword(candidate string) bool {
	if len(candidate) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, r := range candidate {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
