// Package report renders batch results for humans: per-row status lines for
// the console and an HTML preview document for the first successful row.
package report

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"

	"github.com/dmitrymomot/draftgen"
	"github.com/dmitrymomot/draftgen/pkg/artifact"
	"github.com/dmitrymomot/draftgen/pkg/recipient"
	"github.com/dmitrymomot/draftgen/pkg/sanitizer"
)

// Line formats one outcome as a stable status line. Row numbers are 1-based.
func Line(n int, o draftgen.Outcome) string {
	switch o.Status {
	case draftgen.StatusOK:
		return fmt.Sprintf("Row %d: OK – %s - %s", n, o.Client, o.Code)
	case draftgen.StatusSkipped:
		return fmt.Sprintf("Row %d: SKIPPED – %s", n, o.Reason)
	case draftgen.StatusFailed:
		return fmt.Sprintf("Row %d: FAILED – %v", n, o.Err)
	default:
		return fmt.Sprintf("Row %d: %s", n, o.Status)
	}
}

// WriteLines writes one status line per outcome, index-aligned with the input
// rows.
func WriteLines(w io.Writer, outcomes []draftgen.Outcome) error {
	for i, o := range outcomes {
		if _, err := fmt.Fprintln(w, Line(i+1, o)); err != nil {
			return err
		}
	}
	return nil
}

var previewTmpl = htmltemplate.Must(htmltemplate.New("preview").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Batch preview</title></head>
<body>
{{- range .}}
<section>
<h2>{{.Title}}</h2>
<p><strong>To:</strong> {{.To}}<br/>
<strong>CC:</strong> {{.CC}}<br/>
<strong>BCC:</strong> {{.BCC}}<br/>
<strong>Subject:</strong> {{.Subject}}</p>
<div>{{.Body}}</div>
</section>
<hr/>
{{- end}}
</body>
</html>
`))

type previewSection struct {
	Title   string
	To      string
	CC      string
	BCC     string
	Subject string
	Body    htmltemplate.HTML
}

// PreviewHTML renders the first-OK-row messages as one HTML document. Message
// bodies pass through the outreach sanitizer policy before embedding; header
// values are escaped by the template engine.
func PreviewHTML(msgs []artifact.Message) (string, error) {
	sections := make([]previewSection, len(msgs))
	for i, msg := range msgs {
		sections[i] = previewSection{
			Title:   fmt.Sprintf("Message %d", i+1),
			To:      joinEntries(msg.To),
			CC:      joinEntries(msg.CC),
			BCC:     joinEntries(msg.BCC),
			Subject: msg.Subject,
			Body:    htmltemplate.HTML(sanitizer.PreviewHTML(msg.HTML)),
		}
	}

	var b strings.Builder
	if err := previewTmpl.Execute(&b, sections); err != nil {
		return "", fmt.Errorf("report: failed to render preview: %w", err)
	}
	return b.String(), nil
}

func joinEntries(entries []recipient.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
