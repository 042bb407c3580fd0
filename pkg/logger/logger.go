package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing to stdout. Context extractors
// inject per-call attributes such as the batch run id.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewContextHandler(h, extractors...))
}

// NewDiscard creates a no-op logger. Used as the default when callers do not
// configure logging.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
