package users

import (
	"context"

	"pdfvoice/internal/models"
)

// Repository describes persistence operations for User records.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Create inserts a new user and returns it with the assigned ID.
	// The unique constraint on username is enforced by the schema.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound when no such row exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
