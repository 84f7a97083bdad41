package users

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniaodigital/learnhub/internal/census"
	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/security"
	"github.com/uniaodigital/learnhub/internal/store"
)

// fakeHasher avoids paying the Argon2 cost on every test registration.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, encoded string) bool { return encoded == "hashed:"+password }

const testSecret = security.AdminSecret("letmein!")

func newDirectory(t *testing.T) (*Directory, *census.Census) {
	t.Helper()
	dir := t.TempDir()
	log := logging.NewDiscardLogger()
	c := census.New(store.New[census.Document](filepath.Join(dir, "locations.json"), log), log)
	d := NewDirectory(store.New[Document](filepath.Join(dir, "users.json"), log), fakeHasher{}, c, testSecret, log)
	return d, c
}

func validParams() RegisterParams {
	return RegisterParams{
		Username: "alice",
		Password: "Valid1!pass",
		Age:      30,
		Location: "SP",
	}
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	d, c := newDirectory(t)

	outcome, err := d.Register(ctx, validParams())
	require.NoError(t, err)
	assert.Equal(t, RoleUser, outcome.Role)
	assert.False(t, outcome.AdminDenied)

	record, err := d.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hashed:Valid1!pass", record.PasswordHash)
	assert.Equal(t, 30, record.Age)
	assert.Equal(t, "SP", record.Location)

	counts, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["SP"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	d, _ := newDirectory(t)

	_, err := d.Register(ctx, validParams())
	require.NoError(t, err)

	_, err = d.Register(ctx, validParams())
	require.ErrorIs(t, err, ErrDuplicateUsername)

	// Exactly one alice record survives both attempts.
	all, err := d.All(ctx)
	require.NoError(t, err)
	count := 0
	for _, u := range all {
		if u.Username == "alice" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*RegisterParams)
		wantErr error
	}{
		{"weak password", func(p *RegisterParams) { p.Password = "weak" }, ErrWeakPassword},
		{"zero age", func(p *RegisterParams) { p.Age = 0 }, ErrInvalidAge},
		{"negative age", func(p *RegisterParams) { p.Age = -5 }, ErrInvalidAge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, c := newDirectory(t)
			p := validParams()
			tc.mutate(&p)

			_, err := d.Register(ctx, p)
			require.ErrorIs(t, err, tc.wantErr)

			// Nothing persisted on a validation failure.
			all, err := d.All(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
			counts, err := c.All(ctx)
			require.NoError(t, err)
			assert.Empty(t, counts)
		})
	}
}

func TestRegister_RoleResolution(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		request    bool
		attempt    string
		wantRole   Role
		wantDenied bool
	}{
		{"no admin request", false, "", RoleUser, false},
		{"correct secret", true, "letmein!", RoleAdmin, false},
		{"wrong secret downgrades silently", true, "nope", RoleUser, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newDirectory(t)
			p := validParams()
			p.RequestAdmin = tc.request
			p.AdminSecretAttempt = tc.attempt

			outcome, err := d.Register(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, outcome.Role)
			assert.Equal(t, tc.wantDenied, outcome.AdminDenied)

			record, err := d.FindByUsername(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, record.Role)
		})
	}
}

func TestRegister_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	d, _ := newDirectory(t)

	_, err := d.Register(ctx, validParams())
	require.NoError(t, err)

	p := validParams()
	p.Username = "Alice"
	_, err = d.Register(ctx, p)
	require.NoError(t, err)

	all, err := d.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestVerifyLogin(t *testing.T) {
	ctx := context.Background()
	d, _ := newDirectory(t)

	_, err := d.Register(ctx, validParams())
	require.NoError(t, err)

	record, err := d.VerifyLogin(ctx, "alice", "Valid1!pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", record.Username)

	_, err = d.VerifyLogin(ctx, "alice", "Wrong1!pass")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = d.VerifyLogin(ctx, "nobody", "Valid1!pass")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyLogin_WithRealHasher(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := logging.NewDiscardLogger()
	c := census.New(store.New[census.Document](filepath.Join(dir, "locations.json"), log), log)
	d := NewDirectory(store.New[Document](filepath.Join(dir, "users.json"), log), security.NewArgon2Hasher(), c, testSecret, log)

	_, err := d.Register(ctx, validParams())
	require.NoError(t, err)

	// The stored hash must be opaque, not the plaintext.
	record, err := d.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotContains(t, record.PasswordHash, "Valid1!pass")

	_, err = d.VerifyLogin(ctx, "alice", "Valid1!pass")
	require.NoError(t, err)
	_, err = d.VerifyLogin(ctx, "alice", "Valid1!pasS")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T) *Directory {
		d, _ := newDirectory(t)
		_, err := d.Register(ctx, validParams())
		require.NoError(t, err)
		return d
	}

	t.Run("success overwrites only the hash", func(t *testing.T) {
		d := register(t)

		require.NoError(t, d.ResetPassword(ctx, "alice", "SP", 30, "NewPass1!"))

		record, err := d.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hashed:NewPass1!", record.PasswordHash)
		assert.Equal(t, 30, record.Age)
		assert.Equal(t, "SP", record.Location)
		assert.Equal(t, RoleUser, record.Role)

		_, err = d.VerifyLogin(ctx, "alice", "NewPass1!")
		require.NoError(t, err)
		_, err = d.VerifyLogin(ctx, "alice", "Valid1!pass")
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("wrong location keeps the old hash working", func(t *testing.T) {
		d := register(t)

		err := d.ResetPassword(ctx, "alice", "RJ", 30, "NewPass1!")
		require.ErrorIs(t, err, ErrVerificationMismatch)

		_, err = d.VerifyLogin(ctx, "alice", "Valid1!pass")
		require.NoError(t, err)
	})

	t.Run("wrong age", func(t *testing.T) {
		d := register(t)

		err := d.ResetPassword(ctx, "alice", "SP", 31, "NewPass1!")
		require.ErrorIs(t, err, ErrVerificationMismatch)
	})

	t.Run("weak new password", func(t *testing.T) {
		d := register(t)

		err := d.ResetPassword(ctx, "alice", "SP", 30, "weak")
		require.ErrorIs(t, err, ErrWeakPassword)

		_, err = d.VerifyLogin(ctx, "alice", "Valid1!pass")
		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		d := register(t)

		err := d.ResetPassword(ctx, "bob", "SP", 30, "NewPass1!")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDirectory_CorruptDocumentBehavesAsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := logging.NewDiscardLogger()
	usersPath := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(usersPath, []byte("{broken"), 0o660))

	c := census.New(store.New[census.Document](filepath.Join(dir, "locations.json"), log), log)
	d := NewDirectory(store.New[Document](usersPath, log), fakeHasher{}, c, testSecret, log)

	// The corrupt document is silently replaced by the default empty
	// directory; previously stored users are gone, and the next write
	// overwrites the broken file.
	_, err := d.FindByUsername(ctx, "alice")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = d.Register(ctx, validParams())
	require.NoError(t, err)

	all, err := d.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
