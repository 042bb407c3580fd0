package draftgen

import (
	"log/slog"
	"time"
)

// Option configures the Runner.
type Option func(*Runner)

// WithLogger sets the runner logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock overrides the time source used to fix the batch date.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithDateFormat sets the layout used to format the batch date exposed to
// templates as Today. Defaults to "02 Jan 2006".
func WithDateFormat(layout string) Option {
	return func(r *Runner) {
		if layout != "" {
			r.dateFormat = layout
		}
	}
}
