package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftgen/pkg/logger"
)

func TestContextHandler_InjectsRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewContextHandler(
		slog.NewJSONHandler(&buf, nil),
		logger.RunIDExtractor,
	)
	log := slog.New(h)

	ctx := logger.WithRunID(context.Background(), "run-1234")
	log.InfoContext(ctx, "row processed", slog.Int("row", 1))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "run-1234", rec["run_id"])
	assert.Equal(t, "row processed", rec["msg"])
}

func TestContextHandler_NoRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewContextHandler(
		slog.NewJSONHandler(&buf, nil),
		logger.RunIDExtractor,
		nil, // nil extractors are tolerated
	)
	slog.New(h).Info("plain")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	_, hasRunID := rec["run_id"]
	assert.False(t, hasRunID)
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	log := logger.NewDiscard()
	require.NotNil(t, log)
	log.Info("goes nowhere")
}
