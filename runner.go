package draftgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/draftgen/pkg/artifact"
	"github.com/dmitrymomot/draftgen/pkg/catalog"
	"github.com/dmitrymomot/draftgen/pkg/logger"
	"github.com/dmitrymomot/draftgen/pkg/render"
)

// Runner drives whole batches: one session acquisition, rows processed
// strictly in input order, one outcome per row. The underlying session is a
// single stateful handle, so rows are never processed concurrently.
type Runner struct {
	provider   artifact.Provider
	renderer   *render.Renderer
	log        *slog.Logger
	now        func() time.Time
	dateFormat string
}

// NewRunner creates a batch runner over an artifact provider and a template
// renderer.
func NewRunner(provider artifact.Provider, renderer *render.Renderer, opts ...Option) *Runner {
	r := &Runner{
		provider:   provider,
		renderer:   renderer,
		log:        logger.NewDiscard(),
		now:        time.Now,
		dateFormat: "02 Jan 2006",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every row against one category and returns the aggregate
// result. The session is acquired once before the first row and released
// exactly once afterwards, also on fatal errors. Row-level failures are
// converted to outcomes and never abort the batch; only session acquisition
// failure and template configuration bugs (render.ErrMissingField) are fatal,
// and a fatal error yields no partial result.
//
// The batch date is fixed at start: every row renders the same Today value.
func (r *Runner) Run(ctx context.Context, rows []Row, cat catalog.Category) (*Result, error) {
	sess, err := r.provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire session: %w", err)
	}

	runID := uuid.NewString()[:8]
	ctx = logger.WithRunID(ctx, runID)

	defer func() {
		if relErr := sess.Release(); relErr != nil {
			r.log.ErrorContext(ctx, "failed to release session", slog.String("error", relErr.Error()))
		}
	}()

	today := r.now().Format(r.dateFormat)
	r.log.InfoContext(ctx, "batch started",
		slog.String("category", cat.Key),
		slog.Int("rows", len(rows)),
		slog.String("date", today),
	)

	result := &Result{Outcomes: make([]Outcome, 0, len(rows))}
	for i, row := range rows {
		outcome, previews, fatal := r.processRowSafe(ctx, sess, row, cat, today)
		if fatal != nil {
			return nil, fatal
		}

		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Status == StatusOK && result.Preview == nil {
			result.Preview = previews
		}

		switch outcome.Status {
		case StatusOK:
			r.log.InfoContext(ctx, "row processed",
				slog.Int("row", i+1),
				slog.String("client", outcome.Client),
				slog.String("code", outcome.Code),
			)
		case StatusSkipped:
			r.log.WarnContext(ctx, "row skipped",
				slog.Int("row", i+1),
				slog.String("reason", outcome.Reason),
			)
		case StatusFailed:
			r.log.ErrorContext(ctx, "row failed",
				slog.Int("row", i+1),
				slog.String("error", outcome.Err.Error()),
			)
		}
	}

	r.log.InfoContext(ctx, "batch finished",
		slog.Int("ok", result.OKCount()),
		slog.Int("total", len(result.Outcomes)),
	)
	return result, nil
}

// processRowSafe shields the batch from panics inside row processing: a panic
// becomes a Failed outcome for that row, never an aborted batch.
func (r *Runner) processRowSafe(ctx context.Context, sess artifact.Session, row Row, cat catalog.Category, today string) (outcome Outcome, previews []artifact.Message, fatal error) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = Failed(fmt.Errorf("row processing panicked: %v", rec))
			previews = nil
			fatal = nil
		}
	}()
	return r.processRow(ctx, sess, row, cat, today)
}

// isFatalRenderErr reports whether a render error indicates a template or
// catalog configuration bug rather than bad row data.
func isFatalRenderErr(err error) bool {
	return errors.Is(err, render.ErrMissingField) ||
		errors.Is(err, render.ErrTemplateNotFound) ||
		errors.Is(err, render.ErrInvalidFrontmatter)
}
