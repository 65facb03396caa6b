// Package logger builds the structured logger used across the dispatcher.
//
// New returns a plain JSON logger on stdout. NewWithSentry additionally
// fans error records out to Sentry; it degrades gracefully to stdout-only
// when no DSN is configured or initialization fails, so the same wiring
// works locally and in production. Components receive the *slog.Logger by
// injection, there is no process-wide mutable logger state.
package logger
