package logger

import (
	"context"
	"log/slog"
)

// fanoutHandler forwards every record to all wrapped handlers.
type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, next := range h.handlers {
		if next.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, next := range h.handlers {
		if next.Enabled(ctx, rec.Level) {
			if err := next.Handle(ctx, rec.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, next := range h.handlers {
		handlers[i] = next.WithAttrs(attrs)
	}
	return newFanoutHandler(handlers...)
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, next := range h.handlers {
		handlers[i] = next.WithGroup(name)
	}
	return newFanoutHandler(handlers...)
}
