// Package pdf extracts plain text from PDF documents.
package pdf

import "context"

// Extractor reads the document at path and returns its text: each page's
// content in page order, pages joined with a newline. Extraction is
// all-or-nothing; on any failure no partial text is returned and the error
// wraps the underlying cause.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
