package render

import "errors"

var (
	// ErrTemplateNotFound indicates the variant template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrInvalidFrontmatter indicates malformed YAML frontmatter in a template.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrRenderFailed indicates the template could not be parsed or converted.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrMissingField indicates a template references a context field that was
	// not supplied. This is a template/configuration bug, not a data problem:
	// callers treat it as fatal for the whole batch rather than per row.
	ErrMissingField = errors.New("missing context field")
)
