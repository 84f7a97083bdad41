// Package users manages the registered-user directory: registration with
// username uniqueness, credential verification, and identity-proof password
// reset.
package users

import "errors"

// Role is the stored privilege level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Record is one registered user. PasswordHash holds the opaque hash string
// produced by the credential hasher, never the raw password. Username is
// the unique key; it is fixed at registration and never mutated. Only
// PasswordHash may change afterwards, through a successful reset.
type Record struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Age          int    `json:"age"`
	Location     string `json:"location"`
	Role         Role   `json:"role"`
}

// Document is the persisted user directory: an ordered sequence of records,
// at most one per username.
type Document struct {
	Users []Record `json:"users"`
}

// Sentinel errors returned by the directory. Match with errors.Is.
var (
	// ErrDuplicateUsername rejects registration under a taken username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrWeakPassword rejects passwords failing the platform policy.
	ErrWeakPassword = errors.New("password does not meet the security policy")

	// ErrInvalidAge rejects non-positive ages.
	ErrInvalidAge = errors.New("age must be a positive integer")

	// ErrNotFound means no record matches the username.
	ErrNotFound = errors.New("user not found")

	// ErrBadCredentials means the password did not verify.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrVerificationMismatch means the claimed location/age identity proof
	// failed during password reset.
	ErrVerificationMismatch = errors.New("verification data does not match")
)
