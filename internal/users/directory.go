package users

import (
	"context"
	"fmt"

	"github.com/uniaodigital/learnhub/internal/census"
	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/security"
	"github.com/uniaodigital/learnhub/internal/store"
)

// PasswordHasher produces and verifies opaque password hash strings.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// Directory is the user service over the persisted user document.
type Directory struct {
	store  *store.Store[Document]
	hasher PasswordHasher
	census *census.Census
	secret security.AdminSecret
	log    logging.Logger
}

func NewDirectory(s *store.Store[Document], hasher PasswordHasher, c *census.Census, secret security.AdminSecret, log logging.Logger) *Directory {
	return &Directory{
		store:  s,
		hasher: hasher,
		census: c,
		secret: secret,
		log:    log.With("component", "users"),
	}
}

// RegisterParams carries already-parsed registration input.
type RegisterParams struct {
	Username string
	Password string
	Age      int
	Location string

	// RequestAdmin and AdminSecretAttempt drive role resolution. A failed
	// attempt does not fail registration; the caller is told via the
	// outcome and the user is stored with the regular role.
	RequestAdmin       bool
	AdminSecretAttempt string
}

// RegisterOutcome reports the resolved role of a successful registration.
type RegisterOutcome struct {
	Role Role

	// AdminDenied is set when admin was requested but the secret attempt
	// failed, so the user was silently stored as a regular user.
	AdminDenied bool
}

// Register validates the input, stores a new user record with a hashed
// password, and counts the registration in the location census.
//
// Errors: ErrWeakPassword, ErrInvalidAge, ErrDuplicateUsername (exact,
// case-sensitive username match).
//
// The user document is persisted before the census is incremented; a crash
// between the two writes leaves the census one short. The census is a
// running counter by contract and is never reconciled afterwards.
func (d *Directory) Register(ctx context.Context, p RegisterParams) (*RegisterOutcome, error) {
	if !security.IsValidPassword(p.Password) {
		return nil, ErrWeakPassword
	}
	if p.Age <= 0 {
		return nil, ErrInvalidAge
	}

	doc, err := d.store.Load(ctx, Document{Users: []Record{}})
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for _, u := range doc.Users {
		if u.Username == p.Username {
			return nil, ErrDuplicateUsername
		}
	}

	outcome := &RegisterOutcome{Role: RoleUser}
	if p.RequestAdmin {
		if d.secret.Challenge(p.AdminSecretAttempt) {
			outcome.Role = RoleAdmin
		} else {
			outcome.AdminDenied = true
			d.log.Warn(ctx, "admin secret rejected at registration, storing regular user", "username", p.Username)
		}
	}

	hash, err := d.hasher.Hash(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	doc.Users = append(doc.Users, Record{
		Username:     p.Username,
		PasswordHash: hash,
		Age:          p.Age,
		Location:     p.Location,
		Role:         outcome.Role,
	})

	if err := d.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}

	if err := d.census.Increment(ctx, p.Location); err != nil {
		return nil, fmt.Errorf("count location: %w", err)
	}

	d.log.Info(ctx, "user registered", "username", p.Username, "role", outcome.Role)
	return outcome, nil
}

// FindByUsername returns the record for username or ErrNotFound.
func (d *Directory) FindByUsername(ctx context.Context, username string) (*Record, error) {
	doc, err := d.store.Load(ctx, Document{Users: []Record{}})
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for _, u := range doc.Users {
		if u.Username == username {
			record := u
			return &record, nil
		}
	}
	return nil, ErrNotFound
}

// VerifyLogin checks the password for username and returns the record on
// success. Errors: ErrNotFound, ErrBadCredentials. A successful result never
// asserts admin capability by itself; a stored admin must still pass the
// session's secret challenge.
func (d *Directory) VerifyLogin(ctx context.Context, username, password string) (*Record, error) {
	record, err := d.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !d.hasher.Verify(password, record.PasswordHash) {
		return nil, ErrBadCredentials
	}
	return record, nil
}

// ResetPassword overwrites the stored hash for username after the claimed
// location and age both exactly match the stored record. All other fields
// are left untouched.
//
// Errors: ErrNotFound, ErrVerificationMismatch, ErrWeakPassword.
func (d *Directory) ResetPassword(ctx context.Context, username, claimedLocation string, claimedAge int, newPassword string) error {
	doc, err := d.store.Load(ctx, Document{Users: []Record{}})
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	for i, u := range doc.Users {
		if u.Username != username {
			continue
		}

		if u.Location != claimedLocation || u.Age != claimedAge {
			d.log.Warn(ctx, "password reset verification failed", "username", username)
			return ErrVerificationMismatch
		}
		if !security.IsValidPassword(newPassword) {
			return ErrWeakPassword
		}

		hash, err := d.hasher.Hash(newPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		doc.Users[i].PasswordHash = hash
		if err := d.store.Save(ctx, doc); err != nil {
			return fmt.Errorf("save users: %w", err)
		}

		d.log.Info(ctx, "password reset", "username", username)
		return nil
	}

	return ErrNotFound
}

// All returns every user record in registration order. No access control
// here; restricting the listing to admins is the session's job.
func (d *Directory) All(ctx context.Context) ([]Record, error) {
	doc, err := d.store.Load(ctx, Document{Users: []Record{}})
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return doc.Users, nil
}
