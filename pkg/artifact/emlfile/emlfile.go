package emlfile

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/draftgen/pkg/artifact"
	"github.com/dmitrymomot/draftgen/pkg/recipient"
)

// Provider writes message template artifacts as RFC 5322 .eml files under a
// per-run directory. Acquire creates the run directory, Release writes a YAML
// manifest of everything created.
type Provider struct {
	root string
	now  func() time.Time
}

// Option configures the provider.
type Option func(*Provider)

// WithClock overrides the time source used for run metadata.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a provider rooted at the given output directory.
func New(root string, opts ...Option) *Provider {
	p := &Provider{root: root, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire implements artifact.Provider. It creates the run directory and
// returns a session scoped to it. Returns artifact.ErrUnavailable when the
// directory cannot be created.
func (p *Provider) Acquire(ctx context.Context) (artifact.Session, error) {
	runID := uuid.NewString()
	dir := filepath.Join(p.root, "run-"+runID[:8])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", artifact.ErrUnavailable, err)
	}
	return &session{
		dir:     dir,
		runID:   runID,
		started: p.now(),
	}, nil
}

type session struct {
	dir      string
	runID    string
	started  time.Time
	created  []manifestEntry
	released bool
}

type manifest struct {
	RunID     string          `yaml:"run_id"`
	StartedAt time.Time       `yaml:"started_at"`
	Artifacts []manifestEntry `yaml:"artifacts"`
}

type manifestEntry struct {
	Path    string `yaml:"path"`
	Subject string `yaml:"subject"`
	To      string `yaml:"to"`
}

// Create implements artifact.Session.
func (s *session) Create(ctx context.Context, msg *artifact.Message, path string) (artifact.Ref, error) {
	if s.released {
		return artifact.Ref{}, errors.Join(artifact.ErrCreateFailed, artifact.ErrReleased)
	}
	if len(msg.To) == 0 {
		return artifact.Ref{}, errors.Join(artifact.ErrCreateFailed, artifact.ErrNoRecipient)
	}
	if err := ctx.Err(); err != nil {
		return artifact.Ref{}, errors.Join(artifact.ErrCreateFailed, err)
	}

	full := filepath.Join(s.dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return artifact.Ref{}, fmt.Errorf("%w: %s: %v", artifact.ErrCreateFailed, path, err)
	}

	content, err := encodeMessage(msg)
	if err != nil {
		return artifact.Ref{}, fmt.Errorf("%w: %s: %v", artifact.ErrCreateFailed, path, err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return artifact.Ref{}, fmt.Errorf("%w: %s: %v", artifact.ErrCreateFailed, path, err)
	}

	s.created = append(s.created, manifestEntry{
		Path:    path,
		Subject: msg.Subject,
		To:      joinAddresses(msg.To),
	})
	return artifact.Ref{Path: path}, nil
}

// Release implements artifact.Session. It writes the run manifest; a second
// call is a no-op.
func (s *session) Release() error {
	if s.released {
		return nil
	}
	s.released = true

	m := manifest{
		RunID:     s.runID,
		StartedAt: s.started.UTC(),
		Artifacts: s.created,
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("emlfile: failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "manifest.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("emlfile: failed to write manifest: %w", err)
	}
	return nil
}

// Dir returns the absolute run directory of the session. The output consumer
// packages this directory.
func (s *session) Dir() string {
	return s.dir
}

// encodeMessage renders the message as an RFC 5322 HTML mail template.
// X-Unsent marks the file as a draft so mail clients open it for editing
// instead of displaying it as a received message.
func encodeMessage(msg *artifact.Message) ([]byte, error) {
	var b strings.Builder

	subject := msg.Subject
	if subject == "" {
		subject = " "
	}

	writeHeader := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\r\n", name, value)
		}
	}

	writeHeader("To", joinAddresses(msg.To))
	writeHeader("Cc", joinAddresses(msg.CC))
	writeHeader("Bcc", joinAddresses(msg.BCC))
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", subject))
	writeHeader("X-Unsent", "1")
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="utf-8"`)
	writeHeader("Content-Transfer-Encoding", "quoted-printable")
	b.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&b)
	if _, err := qp.Write([]byte(msg.HTML)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}

func joinAddresses(entries []recipient.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
