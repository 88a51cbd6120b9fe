// Package users provides the persistence layer for account records.
//
// # Overview
//
// The package defines a Repository interface for inserting accounts and
// looking them up by username, plus a SQLite-backed implementation
// (SQLiteRepository) that persists data via a dbx.DBTX (*sql.DB or *sql.Tx).
// Username uniqueness is enforced by the schema; a duplicate insert surfaces
// as a driver error from Create.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	u, _ := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: h})
//	u, err := repo.GetByUsername(ctx, "alice") // common.ErrNotFound when absent
package users
