// Package common defines shared constants and sentinel errors used across
// client and server layers of VaultChat. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Authentication flow errors. A single kind covers OTP mismatch and
	// expiry so callers cannot tell which one failed.
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")

	// ErrInvalidCredentials is the only signal that a seed phrase was
	// wrong: the wrap key it derives fails to open the stored private key.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session / relay errors.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDecryption means an envelope could not be opened with the
	// caller's private key, or its integrity check failed.
	ErrDecryption = errors.New("decryption failed")

	// ErrServiceUnavailable is surfaced after bounded internal retries
	// against a downstream store or collaborator have been exhausted.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrEntropyUnavailable means the platform RNG failed.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
