// Package tabular reads case rows from CSV streams. Every field stays raw
// text: no numeric or date coercion happens here or anywhere downstream.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/draftgen"
)

// ErrMissingColumns indicates the header lacks required columns.
var ErrMissingColumns = errors.New("missing required columns")

// RequiredColumns are the columns every input file must carry. Optional
// columns (poc_display_name, extra_cc, bcc) default to empty.
var RequiredColumns = []string{
	draftgen.FieldClientName,
	draftgen.FieldCaseCode,
	draftgen.FieldCaseManagerName,
	draftgen.FieldTo,
}

// ReadRows parses a CSV stream with a header row into rows of raw string
// fields. Header names are matched case-insensitively and trimmed; ragged
// records are tolerated, with missing trailing fields left empty.
func ReadRows(r io.Reader) ([]draftgen.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMissingColumns)
		}
		return nil, fmt.Errorf("tabular: failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		columns[i] = name
		seen[name] = struct{}{}
	}

	var missing []string
	for _, req := range RequiredColumns {
		if _, ok := seen[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var rows []draftgen.Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tabular: failed to read record: %w", err)
		}

		row := make(draftgen.Row, len(columns))
		for i, name := range columns {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
