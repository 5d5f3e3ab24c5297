package auth

import (
	"errors"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed claim set carried by every signed token. Only the
// subject (username), issued-at and expiry are ever populated.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies compact HS256 tokens with a single
// process-wide secret. Rotating the secret invalidates all outstanding
// tokens.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode signs a token for subject expiring after ttl.
func (c *TokenCodec) Encode(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies signature, structure and expiry. Any failure collapses to
// errs.ErrTokenExpired or errs.ErrTokenInvalid; a token without a subject
// is invalid.
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errs.ErrTokenInvalid
	}
	return claims, nil
}
