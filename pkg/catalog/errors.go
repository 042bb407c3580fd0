package catalog

import "errors"

var (
	// ErrInvalidCatalog indicates catalog.yaml is missing, malformed, or
	// internally inconsistent.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnknownCategory indicates a lookup for a category key that is not
	// registered.
	ErrUnknownCategory = errors.New("unknown category")
)
