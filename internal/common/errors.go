// Package common defines shared constants and sentinel errors used across
// PassVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid username or password")

	// Registration errors (user-correctable).
	ErrorUsernameTaken    = errors.New("username already exists")
	ErrorEmailTaken       = errors.New("email already registered")
	ErrorWeakPassword     = errors.New("password must be at least 8 characters long")
	ErrorPasswordMismatch = errors.New("passwords do not match")

	// Validation errors.
	ErrorMissingField = errors.New("missing required fields")

	// Session lifecycle errors. Both mean "must re-authenticate" to the
	// caller; they stay separate for observability.
	ErrorNoSession      = errors.New("no session")
	ErrorSessionExpired = errors.New("session expired")
)
