package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores the batch run id in the context so every log line emitted
// during that run carries it.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDExtractor extracts the batch run id stored by WithRunID.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	if !ok || id == "" {
		return slog.Attr{}, false
	}
	return slog.String("run_id", id), true
}
