package services

import (
	"context"
	"database/sql"
	"fmt"

	"pdfvoice/internal/models"
	"pdfvoice/internal/repositories/uploads"
)

// LibraryService manages the per-user list of registered PDF paths.
//
// Contract:
//   - Add: record a path for the user; duplicates are permitted.
//   - List: all paths for the user in insertion order; empty slice if none.
//   - Remove: delete every record matching (username, path) exactly;
//     common.ErrNotFound when nothing matched, leaving the list unchanged.
type LibraryService interface {
	Add(ctx context.Context, username, filePath string) error
	List(ctx context.Context, username string) ([]string, error)
	Remove(ctx context.Context, username, filePath string) error
}

// libraryService is the concrete LibraryService backed by the local SQL database.
type libraryService struct {
	db *sql.DB
}

// NewLibraryService constructs a LibraryService bound to the given DB.
func NewLibraryService(db *sql.DB) LibraryService {
	return &libraryService{db: db}
}

func (s *libraryService) getRepo() uploads.Repository {
	return uploads.NewSQLiteRepository(s.db)
}

// Add records filePath for username. The new path is visible to subsequent
// List calls as soon as Add returns.
func (s *libraryService) Add(ctx context.Context, username, filePath string) error {
	rec := &models.UploadedFile{Username: username, FilePath: filePath}
	if _, err := s.getRepo().Create(ctx, rec); err != nil {
		return fmt.Errorf("error adding file: %w", err)
	}
	return nil
}

// List returns the user's registered paths in insertion order.
func (s *libraryService) List(ctx context.Context, username string) ([]string, error) {
	recs, err := s.getRepo().ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}

	result := make([]string, 0, len(recs))
	for _, rec := range recs {
		result = append(result, rec.FilePath)
	}
	return result, nil
}

// Remove deletes all records matching (username, filePath). This is
// delete-by-value: duplicate adds of the same path go away together.
func (s *libraryService) Remove(ctx context.Context, username, filePath string) error {
	return s.getRepo().DeleteByUsernameAndPath(ctx, username, filePath)
}
