package uploads

import (
	"context"

	"pdfvoice/internal/models"
)

// Repository describes persistence operations for UploadedFile records.
// All operations are scoped to a single username.
type Repository interface {
	// Create inserts a new record and returns it with the assigned ID.
	// Duplicate (username, file_path) pairs are permitted.
	Create(ctx context.Context, rec *models.UploadedFile) (*models.UploadedFile, error)

	// ListByUsername returns all records for the user in insertion order.
	// An empty slice is returned when the user has no records.
	ListByUsername(ctx context.Context, username string) ([]*models.UploadedFile, error)

	// DeleteByUsernameAndPath removes every row matching both fields exactly
	// (delete-by-value: duplicate adds are all removed by one call). Returns
	// common.ErrNotFound when no row matched.
	DeleteByUsernameAndPath(ctx context.Context, username, filePath string) error
}
