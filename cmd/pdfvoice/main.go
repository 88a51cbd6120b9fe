package main

import (
	"context"
	"log/slog"
	"os"

	"pdfvoice/internal/app/cli"
	"pdfvoice/internal/app/config"
	"pdfvoice/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
