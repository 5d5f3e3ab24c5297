package auth

import (
	"testing"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret")
	token, err := codec.Encode("bob", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "bob", claims.Subject)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret")
	token, err := codec.Encode("bob", -time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, errs.ErrTokenExpired)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenCodec("secret-a").Encode("bob", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenCodec("secret-b").Decode(token)
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestTokenCodec_Tampered(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret")
	token, err := codec.Encode("bob", time.Hour)
	require.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	_, err = codec.Decode(token[:len(token)-1] + string(flipped))
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret")
	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := codec.Decode(token)
		require.ErrorIs(t, err, errs.ErrTokenInvalid, "token %q", token)
	}
}

func TestTokenCodec_EmptySubject(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret")
	token, err := codec.Encode("", time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}
