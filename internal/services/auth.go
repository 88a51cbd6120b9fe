// Package services contains the application services of pdfvoice. This file
// defines the authentication service: account registration and credential
// verification against the local database.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"pdfvoice/internal/common"
	"pdfvoice/internal/dbx"
	"pdfvoice/internal/models"
	"pdfvoice/internal/repositories/users"
)

// AuthService defines the credential store operations.
//
// Contract:
//   - Register: create a new account; common.ErrUsernameTaken when the
//     username exists, leaving the store unchanged.
//   - Authenticate: verify a username/password pair; a single
//     common.ErrInvalidCredentials covers both an unknown username and a
//     wrong password, so callers cannot probe for account existence.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Authenticate(ctx context.Context, username string, password []byte) error
}

// authService is the concrete AuthService backed by the local SQL database.
type authService struct {
	db *sql.DB
}

// NewAuthService constructs an AuthService bound to the given DB.
func NewAuthService(db *sql.DB) AuthService {
	return &authService{db: db}
}

// hashPassword returns the hex-encoded SHA-256 digest of the password.
// The digest is unsalted and single-pass; the stored format predates this
// program and is kept for compatibility with existing databases.
func hashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// Register hashes the password and inserts the account. The existence check
// and the insert run in one transaction, so a duplicate username fails
// atomically without a partial insert.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	hash := hashPassword(password)

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrUsernameTaken
		}
		if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("error checking username: %w", err)
		}

		if _, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: hash}); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
}

// Authenticate hashes the candidate password and compares it against the
// stored digest. Unknown usernames and wrong passwords return the same
// common.ErrInvalidCredentials.
func (a *authService) Authenticate(ctx context.Context, username string, password []byte) error {
	repo := users.NewSQLiteRepository(a.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	candidate := hashPassword(password)
	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(candidate)) == 0 {
		return common.ErrInvalidCredentials
	}
	return nil
}
