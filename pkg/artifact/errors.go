package artifact

import "errors"

var (
	// ErrUnavailable indicates the document-creation capability could not be
	// initialized. Fatal for the whole batch, not per row.
	ErrUnavailable = errors.New("artifact capability unavailable")

	// ErrCreateFailed indicates one artifact could not be created. Per-artifact;
	// the batch continues with the next row.
	ErrCreateFailed = errors.New("failed to create artifact")

	// ErrNoRecipient indicates a message reached the session with no To entry.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrReleased indicates a Create call on an already released session.
	ErrReleased = errors.New("session already released")
)
