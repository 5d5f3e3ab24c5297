// Package errs contains sentinel errors shared across layers so callers
// can map storage and auth failures to stable HTTP responses.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist or is not
	// visible to the requesting account.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication or a failed tier check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicateAccount indicates a unique constraint violation on
	// username or email during registration.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrTokenInvalid indicates a malformed, unsigned or tampered token.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenExpired indicates a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
