package emlfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftgen/pkg/artifact"
	"github.com/dmitrymomot/draftgen/pkg/artifact/emlfile"
	"github.com/dmitrymomot/draftgen/pkg/recipient"
)

func testMessage() *artifact.Message {
	return &artifact.Message{
		Subject: "ER&D Data Collection - AC-123 (Acme Corp)",
		HTML:    "<html><body><p>Hi Jordan,</p></body></html>",
		To:      []recipient.Entry{{Name: "Jane Doe", Email: "jane@acme.com"}},
		CC:      []recipient.Entry{{Email: "lead@acme.com"}},
	}
}

func findRunDir(t *testing.T, root string) string {
	t.Helper()

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	return filepath.Join(root, entries[0].Name())
}

func TestProvider_AcquireCreateRelease(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	p := emlfile.New(root, emlfile.WithClock(func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}))

	sess, err := p.Acquire(context.Background())
	require.NoError(t, err)

	ref, err := sess.Create(context.Background(), testMessage(), "erd/01_initial/Acme Corp - AC-123.eml")
	require.NoError(t, err)
	assert.Equal(t, "erd/01_initial/Acme Corp - AC-123.eml", ref.Path)

	require.NoError(t, sess.Release())

	runDir := findRunDir(t, root)
	raw, err := os.ReadFile(filepath.Join(runDir, "erd", "01_initial", "Acme Corp - AC-123.eml"))
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, "To: Jane Doe <jane@acme.com>\r\n")
	assert.Contains(t, content, "Cc: lead@acme.com\r\n")
	assert.Contains(t, content, "X-Unsent: 1\r\n")
	assert.Contains(t, content, "Content-Type: text/html")
	assert.Contains(t, content, "Hi Jordan,")

	manifest, err := os.ReadFile(filepath.Join(runDir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "erd/01_initial/Acme Corp - AC-123.eml")
}

func TestProvider_AcquireFailure(t *testing.T) {
	t.Parallel()

	// A file where the root directory should be makes MkdirAll fail.
	root := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	p := emlfile.New(filepath.Join(root, "out"))
	_, err := p.Acquire(context.Background())
	require.ErrorIs(t, err, artifact.ErrUnavailable)
}

func TestSession_CreateWithoutRecipient(t *testing.T) {
	t.Parallel()

	p := emlfile.New(t.TempDir())
	sess, err := p.Acquire(context.Background())
	require.NoError(t, err)
	defer sess.Release()

	msg := testMessage()
	msg.To = nil

	_, err = sess.Create(context.Background(), msg, "x.eml")
	require.ErrorIs(t, err, artifact.ErrCreateFailed)
	require.ErrorIs(t, err, artifact.ErrNoRecipient)
}

func TestSession_CreateAfterRelease(t *testing.T) {
	t.Parallel()

	p := emlfile.New(t.TempDir())
	sess, err := p.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.Release())

	_, err = sess.Create(context.Background(), testMessage(), "x.eml")
	require.ErrorIs(t, err, artifact.ErrReleased)
}

func TestSession_ReleaseIdempotent(t *testing.T) {
	t.Parallel()

	p := emlfile.New(t.TempDir())
	sess, err := p.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, sess.Release())
	require.NoError(t, sess.Release())
}

func TestSession_EmptySubjectGetsPlaceholder(t *testing.T) {
	t.Parallel()

	p := emlfile.New(t.TempDir())
	sess, err := p.Acquire(context.Background())
	require.NoError(t, err)
	defer sess.Release()

	msg := testMessage()
	msg.Subject = ""

	_, err = sess.Create(context.Background(), msg, "s.eml")
	require.NoError(t, err)
}
