package cli

import (
	"context"
	"errors"
	"os"

	"pdfvoice/internal/common"
)

// Upload registers a PDF path for the current user and immediately loads it,
// mirroring the flow of picking a file in a desktop file dialog.
func (a *App) Upload(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter path of the PDF file", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		printlnFn("No file given")
		return nil
	}

	if err := a.library.Add(ctx, a.username, path); err != nil {
		a.log.Error(ctx, "failed to register file", "path", path, "error", err)
		printlnFn("Failed to register file:", err.Error())
		return err
	}

	a.loadPDF(ctx, path)
	return nil
}

// List prints the user's registered PDF paths in the order they were added.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	paths, err := a.library.List(ctx, a.username)
	if err != nil {
		a.log.Error(ctx, "failed to list files", "error", err)
		printlnFn("Failed to list files:", err.Error())
		return err
	}

	if len(paths) == 0 {
		printlnFn("No uploaded files")
		return nil
	}
	for _, p := range paths {
		printlnFn(p)
	}
	return nil
}

// Delete removes a registered path. Duplicate entries of the same path are
// all removed together.
func (a *App) Delete(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter path of the file to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.library.Remove(ctx, a.username, path); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such file in your list")
			return nil
		}
		a.log.Error(ctx, "failed to delete file", "path", path, "error", err)
		printlnFn("Failed to delete file:", err.Error())
		return err
	}

	printlnFn("The file has been deleted successfully!")
	return nil
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}
