// Package logger builds slog loggers for batch runs: JSON output, optional
// Sentry shipping, and context extractors that stamp every line emitted during
// a run with its run id.
//
//	log := logger.New(logger.RunIDExtractor)
//	ctx := logger.WithRunID(context.Background(), runID)
//	log.InfoContext(ctx, "row processed") // carries run_id=...
package logger
