package uploads

import (
	"context"
	"fmt"

	"pdfvoice/internal/common"
	"pdfvoice/internal/dbx"
	"pdfvoice/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rec *models.UploadedFile) (*models.UploadedFile, error) {

	query :=
		`INSERT INTO uploaded_files (username, file_path)
		 VALUES (?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, rec.Username, rec.FilePath).Scan(&rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert uploaded file: %w", err)
	}

	return rec, nil
}

func (r *SQLiteRepository) ListByUsername(ctx context.Context, username string) ([]*models.UploadedFile, error) {

	// insertion order, not path order
	query := `SELECT id, username, file_path FROM uploaded_files WHERE username = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("error selecting uploaded files: %w", err)
	}
	defer rows.Close()

	result := make([]*models.UploadedFile, 0)

	for rows.Next() {
		item := &models.UploadedFile{}
		if err := rows.Scan(&item.ID, &item.Username, &item.FilePath); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) DeleteByUsernameAndPath(ctx context.Context, username, filePath string) error {

	query := `DELETE FROM uploaded_files WHERE username = ? AND file_path = ?`

	result, err := r.db.ExecContext(ctx, query, username, filePath)
	if err != nil {
		return fmt.Errorf("failed to delete uploaded file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrNotFound
	}

	return nil
}
