// Package uploads provides the persistence layer for the per-user list of
// registered PDF paths.
//
// # Overview
//
// The package defines a Repository interface for inserting, listing, and
// deleting UploadedFile records, plus a SQLite-backed implementation
// (SQLiteRepository) over a dbx.DBTX (*sql.DB or *sql.Tx). Listing preserves
// insertion order. Deletion is by value: every row matching the
// (username, file_path) pair is removed, and deleting a pair with no rows
// yields common.ErrNotFound.
//
// Typical Usage
//
//	repo := uploads.NewSQLiteRepository(db)
//	_, _ = repo.Create(ctx, &models.UploadedFile{Username: u, FilePath: p})
//	recs, _ := repo.ListByUsername(ctx, u)
//	_ = repo.DeleteByUsernameAndPath(ctx, u, p)
package uploads
