package config

import "time"

// Config holds runtime settings for the pdfvoice application.
//
// Fields:
//   - DatabasePath: path of the SQLite file holding accounts and uploads.
//   - AudioDir: directory where synthesized mp3 files are written.
//   - TTSEndpoint: speech synthesis endpoint URL.
//   - TTSTimeout: HTTP timeout for one synthesis request.
//   - DefaultLanguage: language code preselected in the menu ("en" or "km").
type Config struct {
	DatabasePath    string
	AudioDir        string
	TTSEndpoint     string
	TTSTimeout      time.Duration
	DefaultLanguage string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "pdfvoice.db"
	c.AudioDir = "audio"
	c.TTSEndpoint = "https://translate.google.com/translate_tts"
	c.TTSTimeout = 30 * time.Second
	c.DefaultLanguage = "en"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
