package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader is the Extractor implementation over github.com/ledongthuc/pdf.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Extract opens the document and concatenates the plain text of every page,
// separated by "\n". A missing file, a malformed document, or an undecodable
// page all fail the whole call.
func (r *Reader) Extract(ctx context.Context, path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, doc.NumPage())

	for i := 1; i <= doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
