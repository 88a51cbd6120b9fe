package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"pdfvoice/internal/tts"
)

// Speak reads free text from the user and speaks it in the current language.
func (a *App) Speak(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	text, err := getMultiline(a.reader, "Enter text to speak", os.Stdout)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		printlnFn("Please enter text to speak!")
		return nil
	}

	a.playText(ctx, text)
	return nil
}

// SetLanguage switches the speech language from the fixed menu.
func (a *App) SetLanguage(ctx context.Context) error {
	codes := make([]string, 0, len(tts.Languages()))
	for _, l := range tts.Languages() {
		codes = append(codes, string(l))
	}

	code, err := getSimpleText(a.reader, fmt.Sprintf("Select language (%s)", strings.Join(codes, ", ")), os.Stdout)
	if err != nil {
		return err
	}

	lang, err := tts.ParseLanguage(code)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	a.language = lang
	printlnFn("Language set to", code)
	return nil
}
