// Package session orchestrates authentication state and role-gated access.
//
// A Session moves from anonymous to authenticated through Login. The shared
// admin secret is challenged at two sites through one routine
// (security.AdminSecret.Challenge): optionally at registration, where it
// decides the stored role, and mandatorily at every login of a stored admin,
// where it decides the capabilities of that session only.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/uniaodigital/learnhub/internal/census"
	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/security"
	"github.com/uniaodigital/learnhub/internal/stats"
	"github.com/uniaodigital/learnhub/internal/users"
)

var (
	// ErrNotAuthenticated is returned for operations that need a logged-in
	// user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnauthorized is returned for admin-only operations on a session
	// whose effective role is not admin.
	ErrUnauthorized = errors.New("operation requires admin privileges")
)

// Session composes the user directory, statistics ledger, and location
// census behind role checks. It is the only component that grants or denies
// capabilities; the stores themselves are unguarded.
type Session struct {
	directory *users.Directory
	ledger    *stats.Ledger
	census    *census.Census
	secret    security.AdminSecret
	log       logging.Logger

	id            string
	user          *users.Record
	effectiveRole users.Role
}

func New(d *users.Directory, l *stats.Ledger, c *census.Census, secret security.AdminSecret, log logging.Logger) *Session {
	return &Session{
		directory: d,
		ledger:    l,
		census:    c,
		secret:    secret,
		log:       log.With("component", "session"),
	}
}

// Register creates a new account. Reachable while anonymous; it does not log
// the new user in.
func (s *Session) Register(ctx context.Context, p users.RegisterParams) (*users.RegisterOutcome, error) {
	return s.directory.Register(ctx, p)
}

// ResetPassword runs the identity-proof reset flow. Reachable while
// anonymous.
func (s *Session) ResetPassword(ctx context.Context, username, claimedLocation string, claimedAge int, newPassword string) error {
	return s.directory.ResetPassword(ctx, username, claimedLocation, claimedAge, newPassword)
}

// LoginOutcome describes a successful credential check.
type LoginOutcome struct {
	Username   string
	StoredRole users.Role

	// NeedsElevation is set when the stored role is admin: the session
	// starts with user capabilities and the caller must run Elevate with
	// the admin secret before any admin operation works.
	NeedsElevation bool
}

// Login verifies credentials and, on success, authenticates the session with
// user-level capabilities. Errors pass through from the directory
// (users.ErrNotFound, users.ErrBadCredentials); the presentation layer is
// expected to collapse both into one generic message so usernames cannot be
// enumerated.
func (s *Session) Login(ctx context.Context, username, password string) (*LoginOutcome, error) {
	record, err := s.directory.VerifyLogin(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.id = uuid.NewString()
	s.user = record
	s.effectiveRole = users.RoleUser

	s.log.Info(ctx, "login", "session", s.id, "username", record.Username, "stored_role", record.Role)

	return &LoginOutcome{
		Username:       record.Username,
		StoredRole:     record.Role,
		NeedsElevation: record.Role == users.RoleAdmin,
	}, nil
}

// Elevate runs the mandatory post-login admin challenge. It reports whether
// the session now has admin capabilities.
//
// A stored admin who fails the challenge keeps a user-level session for this
// login only: the login itself is not rejected and the stored role is
// untouched. That is a deliberate, long-standing behavior of the platform,
// not an oversight.
func (s *Session) Elevate(ctx context.Context, secretAttempt string) bool {
	if s.user == nil || s.user.Role != users.RoleAdmin {
		return false
	}

	if !s.secret.Challenge(secretAttempt) {
		s.log.Warn(ctx, "admin secret rejected at login, continuing with user capabilities", "session", s.id, "username", s.user.Username)
		return false
	}

	s.effectiveRole = users.RoleAdmin
	s.log.Info(ctx, "session elevated to admin", "session", s.id, "username", s.user.Username)
	return true
}

// Logout returns the session to the anonymous state.
func (s *Session) Logout(ctx context.Context) {
	if s.user != nil {
		s.log.Info(ctx, "logout", "session", s.id, "username", s.user.Username)
	}
	s.id = ""
	s.user = nil
	s.effectiveRole = ""
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}

// IsAdmin reports whether this session currently holds admin capabilities.
func (s *Session) IsAdmin() bool {
	return s.user != nil && s.effectiveRole == users.RoleAdmin
}

// Username returns the logged-in username, or "" while anonymous.
func (s *Session) Username() string {
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

// RecordAttempt merges a finished quiz attempt into the ledger for the
// logged-in user.
func (s *Session) RecordAttempt(ctx context.Context, quizID string, result stats.AttemptResult) (stats.Entry, error) {
	if !s.IsAuthenticated() {
		return stats.Entry{}, ErrNotAuthenticated
	}
	return s.ledger.RecordAttempt(ctx, s.user.Username, quizID, result)
}

// MyStatistics returns the ledger entries of the logged-in user.
func (s *Session) MyStatistics(ctx context.Context) (map[string]stats.Entry, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.ledger.ForUser(ctx, s.user.Username)
}

// AllStatistics returns every user's ledger entries. Admin only.
func (s *Session) AllStatistics(ctx context.Context) (stats.Document, error) {
	if !s.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.ledger.All(ctx)
}

// AllUsers lists every registered user. Admin only.
func (s *Session) AllUsers(ctx context.Context) ([]users.Record, error) {
	if !s.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.directory.All(ctx)
}

// LocationCensus returns the location→count mapping. Admin only.
func (s *Session) LocationCensus(ctx context.Context) (census.Document, error) {
	if !s.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.census.All(ctx)
}
