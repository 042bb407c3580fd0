// Package casefilter shortlists case repository rows eligible for data
// collection: active cases (no end date) whose data-collection status allows
// outreach, whose start date falls within a selected range, and whose
// applicable functions include at least one targeted function.
package casefilter

import (
	"strings"
	"time"

	"github.com/dmitrymomot/draftgen"
)

// Case repository column names as produced by tabular (lowercased headers).
const (
	FieldStartDate = "case start date"
	FieldEndDate   = "case end date"
	FieldFunctions = "applicable functions"
	FieldDNCStatus = "system dnc status"
)

// AllowStatus is the only data-collection status that permits outreach.
const AllowStatus = "Allow Data Collection"

// DefaultFunctions are the function phrases targeted by the stock catalog.
var DefaultFunctions = []string{
	"Engineering Research and Development",
	"Procurement",
	"Supply Chain",
	"Manufacturing",
}

// dateLayouts are tried in order when parsing spreadsheet date cells.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2 Jan 2006",
	"02 Jan 2006",
	time.RFC3339,
}

// Criteria selects which cases pass the filter. The start-date range is
// inclusive on both ends; a zero Functions list means DefaultFunctions.
type Criteria struct {
	Start     time.Time
	End       time.Time
	Functions []string
}

// Filter returns the rows eligible under the criteria, preserving input
// order. Rows with unparseable start dates are excluded, matching the
// conservative "only cases we can place in the range" behavior.
func Filter(rows []draftgen.Row, c Criteria) []draftgen.Row {
	var out []draftgen.Row
	for _, row := range rows {
		if ok, _ := Eligible(row, c); ok {
			out = append(out, row)
		}
	}
	return out
}

// Eligible reports whether one row passes the filter, with a short reason
// when it does not.
func Eligible(row draftgen.Row, c Criteria) (bool, string) {
	if row.Get(FieldEndDate) != "" {
		return false, "case already ended"
	}
	if row.Get(FieldDNCStatus) != AllowStatus {
		return false, "data collection not allowed"
	}

	start, ok := parseDate(row.Get(FieldStartDate))
	if !ok {
		return false, "unparseable start date"
	}
	if start.Before(c.Start) || start.After(c.End) {
		return false, "start date out of range"
	}

	targets := c.Functions
	if len(targets) == 0 {
		targets = DefaultFunctions
	}
	functions := row.Get(FieldFunctions)
	for _, target := range targets {
		if containsFold(functions, target) {
			return true, ""
		}
	}
	return false, "no applicable function"
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
