package recipient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftgen/pkg/recipient"
)

func TestNormalize_MixedDelimiters(t *testing.T) {
	t.Parallel()

	comma := recipient.Normalize("a@x.com, b@x.com, c@x.com")
	semi := recipient.Normalize("a@x.com; b@x.com; c@x.com")
	mixed := recipient.Normalize("a@x.com, b@x.com; c@x.com")

	require.Len(t, mixed.Entries, 3)
	assert.Equal(t, comma.Entries, semi.Entries)
	assert.Equal(t, comma.Entries, mixed.Entries)
}

func TestNormalize_DedupCaseInsensitiveFirstWins(t *testing.T) {
	t.Parallel()

	set := recipient.Normalize("Jane Doe <jane@acme.com>; jane@ACME.com; ops@acme.com")

	require.Len(t, set.Entries, 2)
	assert.Equal(t, "Jane Doe", set.Entries[0].Name)
	assert.Equal(t, "jane@acme.com", set.Entries[0].Email)
	assert.Equal(t, "ops@acme.com", set.Entries[1].Email)
	assert.Empty(t, set.Rejected)
}

func TestNormalize_OrderOfFirstAppearance(t *testing.T) {
	t.Parallel()

	set := recipient.Normalize("c@x.com; a@x.com", "b@x.com; A@X.COM")

	require.Len(t, set.Entries, 3)
	assert.Equal(t, "c@x.com", set.Entries[0].Email)
	assert.Equal(t, "a@x.com", set.Entries[1].Email)
	assert.Equal(t, "b@x.com", set.Entries[2].Email)
}

func TestNormalize_RejectsMalformedTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"no at sign", "not-an-email"},
		{"no domain dot", "missing@domain"},
		{"no local part", "@nodomain.com"},
		{"embedded space", "a b@x.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := recipient.Normalize(tt.input)
			assert.Empty(t, set.Entries)
			require.Len(t, set.Rejected, 1)
			assert.Equal(t, tt.input, set.Rejected[0])
		})
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.True(t, recipient.Normalize().Empty())
	assert.True(t, recipient.Normalize("").Empty())
	assert.True(t, recipient.Normalize(" ; , ").Empty())
}

func TestNormalize_MergedFieldsDropLaterDuplicates(t *testing.T) {
	t.Parallel()

	set := recipient.Normalize("lead@acme.com", "poc@acme.com; LEAD@acme.com", "team@bench.example.com")

	require.Len(t, set.Entries, 3)
	assert.Equal(t, "lead@acme.com", set.Entries[0].Email)
	assert.Equal(t, "poc@acme.com", set.Entries[1].Email)
	assert.Equal(t, "team@bench.example.com", set.Entries[2].Email)
}

func TestNormalize_DisplayNameParsing(t *testing.T) {
	t.Parallel()

	set := recipient.Normalize(`"Doe, Jane" <jane@acme.com>`)
	// The comma inside the quoted display name splits the token; the email
	// half still parses, the orphaned name half is rejected.
	require.Len(t, set.Entries, 1)
	assert.Equal(t, "jane@acme.com", set.Entries[0].Email)

	set = recipient.Normalize("Jane Doe <jane@acme.com>")
	require.Len(t, set.Entries, 1)
	assert.Equal(t, "Jane Doe", set.Entries[0].Name)
}

func TestSet_Without(t *testing.T) {
	t.Parallel()

	to := recipient.Normalize("jane@acme.com")
	cc := recipient.Normalize("lead@acme.com; JANE@acme.com; poc@acme.com")

	got := cc.Without(to)

	require.Len(t, got.Entries, 2)
	assert.Equal(t, "lead@acme.com", got.Entries[0].Email)
	assert.Equal(t, "poc@acme.com", got.Entries[1].Email)
}

func TestSet_Join(t *testing.T) {
	t.Parallel()

	set := recipient.Normalize("Jane Doe <jane@acme.com>; ops@acme.com")
	assert.Equal(t, "Jane Doe <jane@acme.com>; ops@acme.com", set.Join())
}

func TestDisplayNameFromEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"jane.doe@acme.com", "Jane Doe"},
		{"jane_doe@acme.com", "Jane Doe"},
		{"jane-doe@acme.com", "Jane Doe"},
		{"JANE@acme.com", "Jane"},
		{"POC Person <poc.person@acme.com>", "Poc Person"},
		{"", "POC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, recipient.DisplayNameFromEmail(tt.input, "POC"), tt.input)
	}
}
