// Package tts converts text to spoken audio.
package tts

import (
	"context"
	"errors"
)

// Language is a speech synthesis language code offered by the UI.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageKhmer   Language = "km"
)

// Languages returns the fixed menu of offered languages.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageKhmer}
}

// ParseLanguage maps a code to a Language from the offered menu.
func ParseLanguage(code string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == code {
			return l, nil
		}
	}
	return "", errors.New("unsupported language: " + code)
}

// ErrEmptyText is returned when there is nothing to speak. The backend is
// never contacted in that case.
var ErrEmptyText = errors.New("no text to speak")

// Synthesizer converts text to audio and returns the path of the written
// audio file. The caller decides what to do with the artifact (usually hand
// it to the OS default player).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang Language) (string, error)
}
