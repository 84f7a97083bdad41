package security

import "crypto/subtle"

// AdminSecret is the shared value that gates admin-role assignment at
// registration and admin elevation at login. Both challenge sites must go
// through Challenge so the comparison logic exists exactly once.
type AdminSecret string

// Challenge reports whether attempt matches the secret, in constant time.
func (s AdminSecret) Challenge(attempt string) bool {
	return subtle.ConstantTimeCompare([]byte(s), []byte(attempt)) == 1
}
