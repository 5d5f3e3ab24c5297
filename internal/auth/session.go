package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/Uchencho/Bar-Zubi/internal/models"
)

// AccountDirectory is the subset of account storage the session manager
// needs to resolve a token subject to a full account record.
type AccountDirectory interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// Sessions issues and validates session tokens. It is stateless across
// requests; validity is fully determined by signature and expiry.
type Sessions struct {
	accounts     AccountDirectory
	codec        *TokenCodec
	accessTTL    time.Duration
	refreshTTL   time.Duration
	serviceToken string
}

func NewSessions(accounts AccountDirectory, codec *TokenCodec, accessTTL, refreshTTL time.Duration, serviceToken string) *Sessions {
	return &Sessions{
		accounts:     accounts,
		codec:        codec,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		serviceToken: serviceToken,
	}
}

// Authenticate verifies username/password against the directory. Unknown
// user, inactive account and wrong password all fail with the same
// errs.ErrUnauthorized so responses never leak account existence.
func (s *Sessions) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	if !acc.IsActive || !CheckPassword(password, acc.PasswordHash) {
		return nil, errs.ErrUnauthorized
	}
	return acc, nil
}

// IssueAccessToken signs a short-lived token for username.
func (s *Sessions) IssueAccessToken(username string) (string, error) {
	return s.codec.Encode(username, s.accessTTL)
}

// IssueRefreshToken signs a long-lived token for username. Refresh tokens
// are structurally identical to access tokens and differ only by expiry
// and transport (HTTP-only cookie).
func (s *Sessions) IssueRefreshToken(username string) (string, error) {
	return s.codec.Encode(username, s.refreshTTL)
}

// CheckAuth validates a bearer token and returns its subject. All decode
// failures surface as errs sentinels; it never panics.
func (s *Sessions) CheckAuth(token string) (string, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// CheckAdminAuth validates the token and additionally requires the
// subject's account to carry the superuser flag.
func (s *Sessions) CheckAdminAuth(ctx context.Context, token string) (string, error) {
	username, err := s.CheckAuth(token)
	if err != nil {
		return "", err
	}
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil || !acc.IsSuperuser {
		return "", errs.ErrUnauthorized
	}
	return username, nil
}

// CheckServiceAuth compares a presented token against the static shared
// secret gating registration and login. This tier carries no identity and
// no expiry and is deliberately separate from the signed-token tiers.
func (s *Sessions) CheckServiceAuth(token string) bool {
	if s.serviceToken == "" || len(token) != len(s.serviceToken) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.serviceToken)) == 1
}
