package config

import (
	"flag"
	"os"

	"pdfvoice/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the SQLite database file
//	-o string   directory for synthesized audio files
//	-l string   default speech language code
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.StringVar(&cfg.AudioDir, "o", cfg.AudioDir, "directory for synthesized audio files")
	fs.StringVar(&cfg.DefaultLanguage, "l", cfg.DefaultLanguage, "default speech language code")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
