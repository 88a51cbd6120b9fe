package cli

import (
	"context"
	"os"
	"strings"
)

// Load extracts the text of a PDF and shows it. The extracted text stays on
// the App so that a later "play" can speak it.
func (a *App) Load(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter path of the PDF file", os.Stdout)
	if err != nil {
		return err
	}

	a.loadPDF(ctx, path)
	return nil
}

// loadPDF runs the extraction and displays the result. Extraction failures
// are reported and the previously loaded text is kept.
func (a *App) loadPDF(ctx context.Context, path string) {
	text, err := a.extract.Extract(ctx, path)
	if err != nil {
		a.log.Error(ctx, "failed to load pdf", "path", path, "error", err)
		printlnFn("Failed to load PDF:", err.Error())
		return
	}

	a.loadedText = text
	printlnFn(text)
}

// Play synthesizes the loaded PDF text and hands the audio file to the OS
// default player.
func (a *App) Play(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if strings.TrimSpace(a.loadedText) == "" {
		printlnFn("No text available to play!")
		return nil
	}

	a.playText(ctx, a.loadedText)
	return nil
}

// playText synthesizes text in the current language and opens the artifact.
func (a *App) playText(ctx context.Context, text string) {
	path, err := a.speech.Synthesize(ctx, text, a.language)
	if err != nil {
		a.log.Error(ctx, "synthesis failed", "error", err)
		printlnFn("Failed to play audio:", err.Error())
		return
	}

	printlnFn("Audio saved to", path)
	if err := openArtifact(path); err != nil {
		// playback is a best-effort hand-off; the file is already on disk
		a.log.Warn(ctx, "could not open audio file", "path", path, "error", err)
	}
}
