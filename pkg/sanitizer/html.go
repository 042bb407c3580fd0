// Package sanitizer filters rendered message HTML before it is embedded in
// preview surfaces. Rendering already escapes substituted values; this is the
// display-side policy for HTML that leaves the pipeline.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	outreachPolicy *bluemonday.Policy
	initOnce       sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// Allows exactly the structure outreach templates produce: paragraphs,
		// emphasis, lists, headings, and plain links.
		outreachPolicy = bluemonday.NewPolicy()
		outreachPolicy.AllowStandardURLs()
		outreachPolicy.AllowElements(
			"p", "br", "div", "span",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"h1", "h2", "h3",
			"blockquote",
		)
		outreachPolicy.AllowAttrs("href").OnElements("a")
		outreachPolicy.RequireNoFollowOnLinks(true)
	})
}

// PreviewHTML sanitizes a rendered message body for embedding in a preview
// document. Scripts, event handlers, and javascript: URLs are stripped.
func PreviewHTML(s string) string {
	initPolicy()
	return outreachPolicy.Sanitize(s)
}
