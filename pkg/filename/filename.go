// Package filename produces filesystem-safe artifact base names from raw
// client and case identifiers. Characters that are invalid on common
// filesystems are replaced, whitespace is collapsed, and diacritics are folded
// to their ASCII base letters so generated names stay portable across
// platforms and archives.
package filename

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// invalid covers the characters rejected by Windows filesystems; the most
// restrictive target wins since artifacts travel. Control whitespace is
// handled by the collapse step instead.
const invalid = `<>:"/\|?*`

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Sanitize converts raw text into a safe file base name. Invalid characters
// become "-", diacritics are folded, runs of whitespace collapse to a single
// space, and surrounding whitespace is trimmed.
func Sanitize(name string) string {
	if folded, _, err := transform.String(foldTransformer, name); err == nil {
		name = folded
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(invalid, r) {
			b.WriteRune('-')
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
