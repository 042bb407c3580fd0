package draftgen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/draftgen/pkg/artifact"
	"github.com/dmitrymomot/draftgen/pkg/catalog"
	"github.com/dmitrymomot/draftgen/pkg/filename"
	"github.com/dmitrymomot/draftgen/pkg/recipient"
	"github.com/dmitrymomot/draftgen/pkg/render"
)

// processRow turns one row into one artifact per category variant. The third
// return value is non-nil only for configuration bugs that must abort the
// whole batch; ordinary row problems come back as Skipped or Failed outcomes.
func (r *Runner) processRow(ctx context.Context, sess artifact.Session, row Row, cat catalog.Category, today string) (Outcome, []artifact.Message, error) {
	client := row.Get(FieldClientName)
	code := row.Get(FieldCaseCode)
	if client == "" || code == "" {
		return Skipped("missing client or case code"), nil, nil
	}

	to := recipient.Normalize(row.Get(FieldTo))
	if len(to.Rejected) > 0 {
		r.log.WarnContext(ctx, "invalid recipient tokens dropped",
			slog.String("field", FieldTo),
			slog.String("tokens", strings.Join(to.Rejected, ", ")),
		)
	}
	if to.Empty() {
		return Skipped("no valid recipient"), nil, nil
	}

	bcc := recipient.Normalize(row.Get(FieldBCC))

	pocDisplay := row.Get(FieldPOCDisplayName)
	if pocDisplay == "" {
		pocDisplay = recipient.DisplayNameFromEmail(row.Get(FieldPOCEmail), "POC")
	}

	renderCtx := render.Context{
		ClientName:      client,
		CaseCode:        code,
		CaseManagerName: row.Get(FieldCaseManagerName),
		POCDisplayName:  pocDisplay,
		Today:           today,
		Extra:           cat.Fields,
	}

	base := filename.Sanitize(client + " - " + code)

	var messages []artifact.Message
	for i, variant := range cat.Variants {
		subject, htmlBody, err := r.renderer.Render(variant.Template, renderCtx)
		if err != nil {
			if isFatalRenderErr(err) {
				return Outcome{}, nil, err
			}
			return Failed(err), nil, nil
		}

		cc := r.resolveCC(ctx, row, cat, variant).Without(to)

		msg := artifact.Message{
			Subject: subject,
			HTML:    htmlBody,
			To:      to.Entries,
			CC:      cc.Entries,
			BCC:     bcc.Entries,
		}

		path := fmt.Sprintf("%s/%02d_%s/%s.eml", cat.Key, i+1, variant.Key, base)
		if _, err := sess.Create(ctx, &msg, path); err != nil {
			// Artifacts from earlier variants of this row stay on disk; the
			// row is reported failed so a re-run can target it precisely.
			return Failed(err), nil, nil
		}

		messages = append(messages, msg)
	}

	return Ok(client, code), messages, nil
}

// resolveCC builds the CC set for one variant. Sources are the variant's CC
// list followed by the category-wide extra addresses; a source containing "@"
// is a literal address, anything else names a row field to read. Duplicates
// across sources collapse to the first occurrence.
func (r *Runner) resolveCC(ctx context.Context, row Row, cat catalog.Category, variant catalog.Variant) recipient.Set {
	var raw []string
	for _, src := range variant.CC {
		if strings.Contains(src, "@") {
			raw = append(raw, src)
			continue
		}
		raw = append(raw, row.Get(src))
	}
	raw = append(raw, cat.ExtraCC...)

	set := recipient.Normalize(raw...)
	if len(set.Rejected) > 0 {
		r.log.WarnContext(ctx, "invalid recipient tokens dropped",
			slog.String("field", "cc:"+variant.Key),
			slog.String("tokens", strings.Join(set.Rejected, ", ")),
		)
	}
	return set
}
