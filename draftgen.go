package draftgen

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/draftgen/pkg/artifact"
)

// Well-known row field names. Rows come from tabular case data; every value is
// raw text and is never coerced.
const (
	FieldClientName      = "client_name"
	FieldCaseCode        = "case_code"
	FieldCaseManagerName = "case_manager_name"
	FieldTo              = "to"
	FieldTeamLeadEmail   = "team_lead_email"
	FieldPOCEmail        = "poc_email"
	FieldPOCDisplayName  = "poc_display_name"
	FieldExtraCC         = "extra_cc"
	FieldBCC             = "bcc"
)

// Row is one record of input case data: field name to raw string value.
// The pipeline never mutates a row.
type Row map[string]string

// Get returns the trimmed value of a field, empty when absent.
func (r Row) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// Status classifies the outcome of one processed row.
type Status int

const (
	StatusOK Status = iota
	StatusSkipped
	StatusFailed
)

// String returns the display form used in status reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusSkipped:
		return "SKIPPED"
	case StatusFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of processing one row. Exactly one outcome is
// produced per input row; rows are never retried.
type Outcome struct {
	Status Status
	Client string // set on OK
	Code   string // set on OK
	Reason string // set on SKIPPED
	Err    error  // set on FAILED
}

// Ok builds a successful outcome.
func Ok(client, code string) Outcome {
	return Outcome{Status: StatusOK, Client: client, Code: code}
}

// Skipped builds an outcome for a row that produced no artifacts by design.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Failed builds an outcome for a row whose processing errored.
func Failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}

// Result aggregates a whole batch: one outcome per input row, index-aligned,
// plus the rendered messages of the first successful row for preview.
type Result struct {
	Outcomes []Outcome
	Preview  []artifact.Message
}

// OKCount returns the number of successful rows.
func (r *Result) OKCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusOK {
			n++
		}
	}
	return n
}
