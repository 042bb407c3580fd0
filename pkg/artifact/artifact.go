package artifact

import (
	"context"

	"github.com/dmitrymomot/draftgen/pkg/recipient"
)

// Message is a fully-rendered outreach message ready to be materialized as a
// template artifact. Subject is plain text; HTML is the escaped rendered body.
type Message struct {
	Subject string
	HTML    string
	To      []recipient.Entry
	CC      []recipient.Entry
	BCC     []recipient.Entry
}

// Ref points at one created artifact. Path is relative to the session's
// output root.
type Ref struct {
	Path string
}

// Session is one acquired handle to the document-creation capability. It is
// reused for every artifact in a batch and is not safe for concurrent use.
type Session interface {
	// Create materializes one message as a template artifact at the given
	// relative path. Failures are per-artifact: callers report them and move
	// on to the next row rather than aborting the batch.
	Create(ctx context.Context, msg *Message, path string) (Ref, error)

	// Release tears the session down. Called exactly once per batch,
	// regardless of how many Create calls failed.
	Release() error
}

// Provider acquires sessions. Acquisition is expensive and happens at most
// once per batch; a failure here is fatal for the whole run.
type Provider interface {
	Acquire(ctx context.Context) (Session, error)
}
