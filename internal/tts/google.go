package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the public Google Translate speech endpoint.
const DefaultEndpoint = "https://translate.google.com/translate_tts"

// GoogleEngine synthesizes speech through the Google Translate TTS endpoint
// and writes the resulting mp3 into audioDir.
type GoogleEngine struct {
	endpoint string
	audioDir string
	client   *http.Client
}

// NewGoogleEngine constructs a GoogleEngine. endpoint is usually
// DefaultEndpoint; audioDir must exist.
func NewGoogleEngine(endpoint, audioDir string, timeout time.Duration) *GoogleEngine {
	return &GoogleEngine{
		endpoint: endpoint,
		audioDir: audioDir,
		client:   &http.Client{Timeout: timeout},
	}
}

// Synthesize requests spoken audio for text in lang and writes it to a new
// mp3 file under the engine's audio dir, returning the file path.
// Empty or whitespace-only text fails with ErrEmptyText before any request.
func (g *GoogleEngine) Synthesize(ctx context.Context, text string, lang Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", string(lang))
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build tts request: %w", err)
	}
	// the tw-ob client rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tts backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tts backend returned status %d", resp.StatusCode)
	}

	path := filepath.Join(g.audioDir, fmt.Sprintf("speech-%s.mp3", uuid.NewString()))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close audio file: %w", err)
	}

	return path, nil
}
