package config

import (
	"encoding/json"
	"os"
	"time"

	"pdfvoice/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// given in whole seconds; it is converted to time.Duration when copied into
// the runtime Config.
type JsonConfig struct {
	DatabasePath    string `json:"database_path"`
	AudioDir        string `json:"audio_dir"`
	TTSEndpoint     string `json:"tts_endpoint"`
	TTSTimeoutS     int    `json:"tts_timeout_s"`
	DefaultLanguage string `json:"default_language"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is given, nothing is loaded. Only fields present in the file
// override their defaults. Read or unmarshal errors panic; config problems
// should stop the program before any window of partial state opens.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.AudioDir != "" {
		cfg.AudioDir = jc.AudioDir
	}
	if jc.TTSEndpoint != "" {
		cfg.TTSEndpoint = jc.TTSEndpoint
	}
	if jc.TTSTimeoutS > 0 {
		cfg.TTSTimeout = time.Duration(jc.TTSTimeoutS) * time.Second
	}
	if jc.DefaultLanguage != "" {
		cfg.DefaultLanguage = jc.DefaultLanguage
	}
}
