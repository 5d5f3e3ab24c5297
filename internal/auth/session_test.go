package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/Uchencho/Bar-Zubi/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	byUsername map[string]*models.Account
}

var _ AccountDirectory = (*fakeDirectory)(nil)

func (f *fakeDirectory) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	acc, ok := f.byUsername[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *acc
	return &cpy, nil
}

func newTestSessions(t *testing.T, accounts ...*models.Account) *Sessions {
	t.Helper()
	dir := &fakeDirectory{byUsername: map[string]*models.Account{}}
	for _, acc := range accounts {
		dir.byUsername[acc.Username] = acc
	}
	return NewSessions(dir, NewTokenCodec("test-secret"), 4*time.Hour, 24*time.Hour, "service-secret")
}

func testAccount(t *testing.T, username, password string, superuser bool) *models.Account {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &models.Account{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  superuser,
	}
}

func TestSessions_Authenticate(t *testing.T) {
	t.Parallel()

	s := newTestSessions(t, testAccount(t, "bob", "pw", false))

	acc, err := s.Authenticate(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, "bob", acc.Username)

	// unknown user and wrong password fail identically
	_, err = s.Authenticate(context.Background(), "nobody", "pw")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = s.Authenticate(context.Background(), "bob", "wrong")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestSessions_Authenticate_InactiveAccount(t *testing.T) {
	t.Parallel()

	acc := testAccount(t, "bob", "pw", false)
	acc.IsActive = false
	s := newTestSessions(t, acc)

	_, err := s.Authenticate(context.Background(), "bob", "pw")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestSessions_CheckAuth(t *testing.T) {
	t.Parallel()

	s := newTestSessions(t)

	token, err := s.IssueAccessToken("bob")
	require.NoError(t, err)
	username, err := s.CheckAuth(token)
	require.NoError(t, err)
	require.Equal(t, "bob", username)

	refresh, err := s.IssueRefreshToken("bob")
	require.NoError(t, err)
	username, err = s.CheckAuth(refresh)
	require.NoError(t, err)
	require.Equal(t, "bob", username)
}

func TestSessions_CheckAuth_Failures(t *testing.T) {
	t.Parallel()

	s := newTestSessions(t)
	codec := NewTokenCodec("test-secret")

	expired, err := codec.Encode("bob", -time.Minute)
	require.NoError(t, err)
	noSubject, err := codec.Encode("", time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":      "",
		"garbage":    "not.a.token",
		"expired":    expired,
		"no subject": noSubject,
	} {
		username, err := s.CheckAuth(token)
		require.Error(t, err, name)
		require.Empty(t, username, name)
	}
}

func TestSessions_CheckAdminAuth(t *testing.T) {
	t.Parallel()

	s := newTestSessions(t,
		testAccount(t, "root", "pw", true),
		testAccount(t, "bob", "pw", false),
	)
	ctx := context.Background()

	adminToken, err := s.IssueAccessToken("root")
	require.NoError(t, err)
	username, err := s.CheckAdminAuth(ctx, adminToken)
	require.NoError(t, err)
	require.Equal(t, "root", username)

	// valid token, superuser flag unset
	userToken, err := s.IssueAccessToken("bob")
	require.NoError(t, err)
	username, err = s.CheckAdminAuth(ctx, userToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Empty(t, username)

	// valid token, account missing from the directory
	ghostToken, err := s.IssueAccessToken("ghost")
	require.NoError(t, err)
	_, err = s.CheckAdminAuth(ctx, ghostToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = s.CheckAdminAuth(ctx, "garbage")
	require.Error(t, err)
}

func TestSessions_CheckServiceAuth(t *testing.T) {
	t.Parallel()

	s := newTestSessions(t)

	require.True(t, s.CheckServiceAuth("service-secret"))
	require.False(t, s.CheckServiceAuth("service-secre"))
	require.False(t, s.CheckServiceAuth("service-secret-x"))
	require.False(t, s.CheckServiceAuth(""))
}

func TestSessions_CheckServiceAuth_Unconfigured(t *testing.T) {
	t.Parallel()

	dir := &fakeDirectory{byUsername: map[string]*models.Account{}}
	s := NewSessions(dir, NewTokenCodec("k"), time.Hour, time.Hour, "")

	// an empty configured secret must never match, not even an empty token
	require.False(t, s.CheckServiceAuth(""))
	require.False(t, s.CheckServiceAuth("anything"))
}
