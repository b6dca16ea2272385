package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"example.com/mastermind/internal/app"
	"example.com/mastermind/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, logger, app.Options{})
	if err := a.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}

// newLogger writes to stderr so the board stays alone on stdout.
func newLogger(cfg config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if cfg.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
