package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"pdfvoice/internal/app/config"
	"pdfvoice/internal/filex"
	"pdfvoice/internal/logging"
	"pdfvoice/internal/pdf"
	"pdfvoice/internal/services"
	"pdfvoice/internal/storage"
	"pdfvoice/internal/tts"
)

// App is the interactive session: services wired over the local database,
// the active username after login, and the currently loaded document text.
// There is exactly one App per process; no state lives in globals.
type App struct {
	config  *config.Config
	log     logging.Logger
	auth    services.AuthService
	library services.LibraryService
	extract pdf.Extractor
	speech  tts.Synthesizer

	db *sql.DB

	// username is the session identity, empty until a successful login.
	username string
	language tts.Language
	// loadedText is the text of the most recently loaded PDF.
	loadedText string

	reader *bufio.Reader
}

// NewApp opens the database, prepares the audio directory, and wires the
// services and collaborators.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	audioDir, err := filex.EnsureDir(cfg.AudioDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	language, err := tts.ParseLanguage(cfg.DefaultLanguage)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		auth:     services.NewAuthService(db),
		library:  services.NewLibraryService(db),
		extract:  pdf.NewReader(),
		speech:   tts.NewGoogleEngine(cfg.TTSEndpoint, audioDir, cfg.TTSTimeout),
		db:       db,
		language: language,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run drives the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.username != ""
}

// status is shown in the prompt: the session identity and language.
func (a *App) status() string {
	who := "not logged in"
	if a.isLoggedIn() {
		who = a.username
	}
	return who + " | " + string(a.language)
}
