package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftgen/pkg/catalog"
	"github.com/dmitrymomot/draftgen/pkg/render"
)

func TestLoad_Default(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(catalog.DefaultFS())
	require.NoError(t, err)

	assert.Equal(t, []string{"erd", "supplychain", "procurement", "manufacturing"}, c.Keys())

	erd, err := c.Category("erd")
	require.NoError(t, err)
	assert.Equal(t, "ER&D", erd.Name)
	require.Len(t, erd.Variants, 3)
	assert.Equal(t, "initial", erd.Variants[0].Key)
	assert.Equal(t, "followup", erd.Variants[1].Key)
	assert.Equal(t, "escalation", erd.Variants[2].Key)
	assert.Contains(t, erd.ExtraCC, "benchmarking-coe@example.com")
	assert.Equal(t, "ER&D", erd.Fields["CategoryName"])
}

func TestLoad_DefaultTemplatesValidate(t *testing.T) {
	t.Parallel()

	fsys := catalog.DefaultFS()
	c, err := catalog.Load(fsys)
	require.NoError(t, err)

	r, err := render.New(fsys)
	require.NoError(t, err)
	require.NoError(t, c.Validate(r))
}

func TestLoad_UnknownCategory(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(catalog.DefaultFS())
	require.NoError(t, err)

	_, err = c.Category("finance")
	require.ErrorIs(t, err, catalog.ErrUnknownCategory)
}

func TestLoad_InvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty", "categories: []"},
		{"category without key", "categories:\n  - name: X\n    variants:\n      - {key: a, template: a.md}"},
		{"no variants", "categories:\n  - key: x\n    name: X"},
		{"variant without template", "categories:\n  - key: x\n    variants:\n      - {key: a}"},
		{"duplicate variant", "categories:\n  - key: x\n    variants:\n      - {key: a, template: a.md}\n      - {key: a, template: b.md}"},
		{"duplicate category", "categories:\n  - key: x\n    variants:\n      - {key: a, template: a.md}\n  - key: x\n    variants:\n      - {key: a, template: a.md}"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{
				"catalog.yaml": &fstest.MapFile{Data: []byte(tt.content)},
			}
			_, err := catalog.Load(fsys)
			require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(fstest.MapFS{})
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestValidate_MissingTemplate(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"catalog.yaml": &fstest.MapFile{Data: []byte(
			"categories:\n  - key: x\n    variants:\n      - {key: a, template: missing.md}",
		)},
	}
	c, err := catalog.Load(fsys)
	require.NoError(t, err)

	r, err := render.New(fsys)
	require.NoError(t, err)
	require.ErrorIs(t, c.Validate(r), render.ErrTemplateNotFound)
}
