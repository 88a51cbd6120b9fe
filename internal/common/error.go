// Package common defines shared constants and sentinel errors used across
// the layers of pdfvoice. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential store errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
