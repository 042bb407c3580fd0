package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/draftgen/pkg/render"
)

//go:embed templates
var embedded embed.FS

// Variant is one message template within a category, generated once per row.
// Variants are ordered; the order in the catalog file is the generation order.
type Variant struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Template string   `yaml:"template"`
	CC       []string `yaml:"cc"`
}

// Category is one outreach function with its ordered variant set. ExtraCC
// addresses are merged into the CC list of every variant. Fields are
// category-specific values exposed to templates via the render context.
type Category struct {
	Key      string            `yaml:"key"`
	Name     string            `yaml:"name"`
	ExtraCC  []string          `yaml:"extra_cc"`
	Fields   map[string]string `yaml:"fields"`
	Variants []Variant         `yaml:"variants"`
}

// Catalog is the static registry of categories, resolved once per run.
type Catalog struct {
	categories map[string]Category
	order      []string
}

type catalogFile struct {
	Categories []Category `yaml:"categories"`
}

// Load reads catalog.yaml from the root of the given filesystem. Template
// paths inside the file are relative to the same filesystem.
func Load(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, "catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrInvalidCatalog)
	}

	c := &Catalog{categories: make(map[string]Category, len(file.Categories))}
	for _, cat := range file.Categories {
		if cat.Key == "" {
			return nil, fmt.Errorf("%w: category without key", ErrInvalidCatalog)
		}
		if _, dup := c.categories[cat.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.Key)
		}
		if len(cat.Variants) == 0 {
			return nil, fmt.Errorf("%w: category %q has no variants", ErrInvalidCatalog, cat.Key)
		}
		seen := make(map[string]struct{}, len(cat.Variants))
		for _, v := range cat.Variants {
			if v.Key == "" || v.Template == "" {
				return nil, fmt.Errorf("%w: category %q: variant needs key and template", ErrInvalidCatalog, cat.Key)
			}
			if _, dup := seen[v.Key]; dup {
				return nil, fmt.Errorf("%w: category %q: duplicate variant %q", ErrInvalidCatalog, cat.Key, v.Key)
			}
			seen[v.Key] = struct{}{}
		}
		c.categories[cat.Key] = cat
		c.order = append(c.order, cat.Key)
	}
	return c, nil
}

// DefaultFS returns the embedded default template filesystem, rooted where
// catalog.yaml lives. Use it with Load and render.New for the stock category
// set.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Category looks up a category by key.
func (c *Catalog) Category(key string) (Category, error) {
	cat, ok := c.categories[key]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return cat, nil
}

// Keys returns the category keys in catalog order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Validate checks that every variant template in every category parses,
// surfacing template bugs at setup time instead of mid-batch.
func (c *Catalog) Validate(r *render.Renderer) error {
	for _, key := range c.order {
		for _, v := range c.categories[key].Variants {
			if err := r.Validate(v.Template); err != nil {
				return fmt.Errorf("category %q variant %q: %w", key, v.Key, err)
			}
		}
	}
	return nil
}
