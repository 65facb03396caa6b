package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
}

// New creates a JSON-formatted stdout logger.
func New() *slog.Logger {
	return slog.New(stdoutHandler())
}

// NewWithSentry creates a logger that writes to stdout and reports errors
// to Sentry. With an empty DSN, or when Sentry init fails, it degrades to
// stdout-only logging so the same code path works in development.
func NewWithSentry(cfg SentryConfig) *slog.Logger {
	stdout := stdoutHandler()

	if cfg.DSN == "" {
		return slog.New(stdout)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		log := slog.New(stdout)
		log.Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return log
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(stdout, sentryHandler))
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
