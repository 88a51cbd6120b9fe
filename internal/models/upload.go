package models

// UploadedFile is a row in the uploaded_files table: one PDF path registered
// by one user. The same path may appear more than once for a user.
type UploadedFile struct {
	// ID is the surrogate identifier assigned on insert.
	ID int64

	// Username references users.Username. The reference is advisory; the
	// schema does not enforce it with a cascading constraint.
	Username string

	// FilePath is the user-supplied path of the PDF on the local filesystem.
	FilePath string
}
