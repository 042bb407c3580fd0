package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftgen"
	"github.com/dmitrymomot/draftgen/pkg/artifact"
	"github.com/dmitrymomot/draftgen/pkg/recipient"
	"github.com/dmitrymomot/draftgen/pkg/report"
)

func TestWriteLines(t *testing.T) {
	t.Parallel()

	outcomes := []draftgen.Outcome{
		draftgen.Ok("Acme Corp", "AC-123"),
		draftgen.Skipped("no valid recipient"),
		draftgen.Failed(errors.New("disk full")),
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteLines(&buf, outcomes))

	assert.Equal(t,
		"Row 1: OK – Acme Corp - AC-123\n"+
			"Row 2: SKIPPED – no valid recipient\n"+
			"Row 3: FAILED – disk full\n",
		buf.String())
}

func TestPreviewHTML(t *testing.T) {
	t.Parallel()

	msgs := []artifact.Message{
		{
			Subject: "ER&D Data Collection - AC-123 (Acme Corp)",
			HTML:    "<p>Hi <strong>Jordan</strong>,</p><script>alert(1)</script>",
			To:      []recipient.Entry{{Name: "Jane Doe", Email: "jane@acme.com"}},
			CC:      []recipient.Entry{{Email: "lead@acme.com"}},
		},
		{
			Subject: "Follow-up",
			HTML:    "<p>ping</p>",
			To:      []recipient.Entry{{Email: "jane@acme.com"}},
		},
	}

	html, err := report.PreviewHTML(msgs)
	require.NoError(t, err)

	assert.Contains(t, html, "Message 1")
	assert.Contains(t, html, "Message 2")
	assert.Contains(t, html, "Jane Doe &lt;jane@acme.com&gt;")
	assert.Contains(t, html, "<p>Hi <strong>Jordan</strong>,</p>")
	assert.NotContains(t, html, "<script>")
	// The subject header is escaped by the template engine, not sanitized away.
	assert.Contains(t, html, "ER&amp;D Data Collection - AC-123 (Acme Corp)")
}
