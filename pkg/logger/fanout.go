package logger

import (
	"context"
	"log/slog"
)

// fanoutHandler duplicates records to every wrapped handler that accepts
// the record's level.
type fanoutHandler []slog.Handler

func newMultiHandler(handlers ...slog.Handler) slog.Handler {
	return fanoutHandler(handlers)
}

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, rec.Level) {
			if err := h.Handle(ctx, rec.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make(fanoutHandler, len(f))
	for i, h := range f {
		wrapped[i] = h.WithAttrs(attrs)
	}
	return wrapped
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	wrapped := make(fanoutHandler, len(f))
	for i, h := range f {
		wrapped[i] = h.WithGroup(name)
	}
	return wrapped
}
