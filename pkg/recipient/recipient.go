package recipient

import (
	"fmt"
	"regexp"
	"strings"
)

// emailShape is a deliberately conservative address check: local@domain with at
// least one dot in the domain and no whitespace anywhere. Deliverability is the
// mail system's problem, not ours; this only guards against obviously broken
// tokens coming out of a spreadsheet.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[A-Za-z]+$`)

// Entry is a single validated recipient. Email comparison is case-insensitive,
// but the original casing is kept for display.
type Entry struct {
	Name  string
	Email string
}

// String formats the entry in RFC 5322 style: "Name <email>" or bare email.
func (e Entry) String() string {
	if e.Name == "" {
		return e.Email
	}
	return fmt.Sprintf("%s <%s>", e.Name, e.Email)
}

// key returns the dedup key for the entry.
func (e Entry) key() string {
	return strings.ToLower(e.Email)
}

// Set is an ordered collection of unique recipients plus the raw tokens that
// failed validation. A Set is never nil-unsafe: the zero value is an empty set.
type Set struct {
	Entries  []Entry
	Rejected []string
}

// Empty reports whether the set contains no valid entries.
func (s Set) Empty() bool {
	return len(s.Entries) == 0
}

// Emails returns the formatted entries, one string per recipient.
func (s Set) Emails() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.String()
	}
	return out
}

// Join renders the set as a single "; " separated header value.
func (s Set) Join() string {
	return strings.Join(s.Emails(), "; ")
}

// Without returns a copy of s with every entry that also appears in other
// removed. Comparison is case-insensitive on the email. Used to drop CC
// addresses that are already in To.
func (s Set) Without(other Set) Set {
	seen := make(map[string]struct{}, len(other.Entries))
	for _, e := range other.Entries {
		seen[e.key()] = struct{}{}
	}
	out := Set{Rejected: s.Rejected}
	for _, e := range s.Entries {
		if _, dup := seen[e.key()]; dup {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

// Normalize parses one or more raw recipient fields into a deduplicated,
// order-preserving Set. Each field may mix comma and semicolon delimiters.
// Tokens are parsed as either "Display Name <email>" or a bare email; tokens
// that fail the address-shape check are collected in Rejected rather than
// raised as errors. Duplicates (case-insensitive on email) keep the first-seen
// entry with its display name and casing. Empty input yields an empty Set.
func Normalize(fields ...string) Set {
	var set Set
	seen := make(map[string]struct{})
	for _, field := range fields {
		for _, token := range splitTokens(field) {
			entry, ok := parseToken(token)
			if !ok {
				set.Rejected = append(set.Rejected, token)
				continue
			}
			if _, dup := seen[entry.key()]; dup {
				continue
			}
			seen[entry.key()] = struct{}{}
			set.Entries = append(set.Entries, entry)
		}
	}
	return set
}

// splitTokens splits raw recipient text on comma or semicolon, trimming
// whitespace and dropping empty tokens.
func splitTokens(raw string) []string {
	raw = strings.ReplaceAll(raw, ",", ";")
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseToken extracts an Entry from "Display Name <email>" or a bare email.
func parseToken(token string) (Entry, bool) {
	name, email := "", token
	if open := strings.Index(token, "<"); open != -1 {
		if close := strings.Index(token[open:], ">"); close != -1 {
			name = strings.TrimSpace(token[:open])
			email = strings.TrimSpace(token[open+1 : open+close])
			name = strings.Trim(name, `"`)
		}
	}
	if !emailShape.MatchString(email) {
		return Entry{}, false
	}
	return Entry{Name: name, Email: email}, true
}

// DisplayNameFromEmail derives a human-readable display name from the local
// part of an email address: "jane.doe@acme.com" becomes "Jane Doe". Returns
// fallback when nothing usable remains.
func DisplayNameFromEmail(email, fallback string) string {
	if open := strings.Index(email, "<"); open != -1 {
		if close := strings.Index(email[open:], ">"); close != -1 {
			email = strings.TrimSpace(email[open+1 : open+close])
		}
	}
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	for _, sep := range []string{".", "_", "-"} {
		local = strings.ReplaceAll(local, sep, " ")
	}
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	if len(words) == 0 {
		return fallback
	}
	return strings.Join(words, " ")
}
