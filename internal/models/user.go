// Package models defines the data records persisted by pdfvoice.
package models

// User is an account row in the users table.
type User struct {
	// ID is the surrogate identifier assigned on insert.
	ID int64

	// Username is the unique, case-sensitive account name.
	Username string

	// PasswordHash is the hex-encoded SHA-256 digest of the password.
	// Plaintext passwords are never stored.
	PasswordHash string
}
