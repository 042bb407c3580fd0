// Package recipient normalizes raw delimited recipient text into deduplicated,
// order-preserving, validated address sets.
//
// Input typically comes straight out of spreadsheet cells, so the parser is
// forgiving: commas and semicolons may be mixed within one field, whitespace is
// trimmed, and tokens may be bare addresses or "Display Name <email>" pairs.
// Malformed tokens never cause an error; they are reported on Set.Rejected and
// simply do not appear among the entries.
//
//	set := recipient.Normalize("Jane Doe <jane@acme.com>; jane@ACME.com, ops@acme.com")
//	// set.Entries: [Jane Doe <jane@acme.com>, ops@acme.com]
//
// Deduplication is case-insensitive on the email only; the first occurrence
// wins and keeps its display name and original casing. Without removes entries
// already present in another set, which is how CC lists are deduplicated
// against To.
package recipient
