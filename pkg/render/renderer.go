package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// defaultLayout wraps the converted body when no layout file is configured.
// Kept minimal: outreach templates carry their own structure in markdown.
const defaultLayout = `<html><body>{{.Content}}</body></html>`

// Renderer turns variant template files into rendered subjects and HTML
// bodies. Template files are markdown with YAML frontmatter declaring the
// subject pattern:
//
//	---
//	subject: "ER&D Data Collection - {{.CaseCode}} ({{.ClientName}})"
//	---
//	Hi {{.CaseManagerName}},
//	...
//
// Subjects render as plain text. Bodies render through text/template into
// markdown, then through goldmark into HTML, then into an html/template
// layout. Goldmark's default renderer drops raw HTML, so markup smuggled in
// through substituted values (a client named "<script>...") never reaches the
// output; only the trusted template structure produces tags.
//
// Rendering is pure: the same (template, context) pair always yields
// byte-identical output. Parsed templates are cached.
type Renderer struct {
	fs     fs.FS
	md     goldmark.Markdown
	layout *htmltemplate.Template

	cache map[string]*parsed
	mu    sync.RWMutex
}

// parsed holds the compiled subject and body templates of one variant file.
type parsed struct {
	subject *texttemplate.Template
	body    *texttemplate.Template
}

// Option configures the renderer.
type Option func(*config)

type config struct {
	layoutFile string
}

// WithLayout loads the HTML layout from the given file in the template
// filesystem instead of using the built-in minimal layout. The layout receives
// the converted body as {{.Content}}.
func WithLayout(name string) Option {
	return func(c *config) {
		c.layoutFile = name
	}
}

// New creates a Renderer over the given template filesystem.
// Returns ErrLayoutNotFound if a configured layout file is missing.
func New(filesystem fs.FS, opts ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	layoutSrc := defaultLayout
	if cfg.layoutFile != "" {
		content, err := fs.ReadFile(filesystem, cfg.layoutFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, cfg.layoutFile, err)
		}
		layoutSrc = string(content)
	}

	layout, err := htmltemplate.New("layout").Parse(layoutSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: layout: %v", ErrRenderFailed, err)
	}

	return &Renderer{
		fs:     filesystem,
		md:     goldmark.New(),
		layout: layout,
		cache:  make(map[string]*parsed),
	}, nil
}

// Render produces the subject and HTML body for one template file against a
// context. Errors wrapping ErrMissingField indicate a template referencing a
// field absent from the context; treat those as configuration bugs.
func (r *Renderer) Render(templateName string, ctx Context) (subject, htmlBody string, err error) {
	p, err := r.getTemplate(templateName)
	if err != nil {
		return "", "", err
	}

	data := ctx.data()

	var subjBuf bytes.Buffer
	if err := p.subject.Execute(&subjBuf, data); err != nil {
		return "", "", fmt.Errorf("%w: %s subject: %v", ErrMissingField, templateName, err)
	}

	var mdBuf bytes.Buffer
	if err := p.body.Execute(&mdBuf, data); err != nil {
		return "", "", fmt.Errorf("%w: %s body: %v", ErrMissingField, templateName, err)
	}

	var htmlBuf bytes.Buffer
	if err := r.md.Convert(mdBuf.Bytes(), &htmlBuf); err != nil {
		return "", "", fmt.Errorf("%w: %s: markdown conversion: %v", ErrRenderFailed, templateName, err)
	}

	var out bytes.Buffer
	layoutData := map[string]any{
		"Content": htmltemplate.HTML(htmlBuf.String()),
		"Subject": subjBuf.String(),
	}
	if err := r.layout.Execute(&out, layoutData); err != nil {
		return "", "", fmt.Errorf("%w: %s: layout: %v", ErrRenderFailed, templateName, err)
	}

	return subjBuf.String(), out.String(), nil
}

// Validate parses the named template files without rendering them, surfacing
// configuration errors at setup time instead of mid-batch.
func (r *Renderer) Validate(templateNames ...string) error {
	for _, name := range templateNames {
		if _, err := r.getTemplate(name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) getTemplate(name string) (*parsed, error) {
	r.mu.RLock()
	p, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.cache[name]; ok {
		return p, nil
	}

	content, err := fs.ReadFile(r.fs, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	meta, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	subjPattern := meta.Subject
	if subjPattern == "" {
		return nil, fmt.Errorf("%w: %s: missing subject", ErrInvalidFrontmatter, name)
	}

	subjTmpl, err := texttemplate.New(name + ":subject").
		Option("missingkey=error").Parse(subjPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s subject: %v", ErrRenderFailed, name, err)
	}

	bodyTmpl, err := texttemplate.New(name).
		Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s body: %v", ErrRenderFailed, name, err)
	}

	p = &parsed{subject: subjTmpl, body: bodyTmpl}
	r.cache[name] = p
	return p, nil
}

// frontmatter is the metadata block of a variant template file.
type frontmatter struct {
	Subject string `yaml:"subject"`
}

// splitFrontmatter separates the YAML frontmatter from the markdown body.
// The frontmatter block is mandatory and delimited by "---" lines.
func splitFrontmatter(content []byte) (frontmatter, string, error) {
	var meta frontmatter

	const delim = "---"
	s := string(content)
	if !strings.HasPrefix(s, delim) {
		return meta, "", fmt.Errorf("%w: missing opening delimiter", ErrInvalidFrontmatter)
	}

	rest := strings.TrimPrefix(s, delim)
	rest = strings.TrimLeft(rest, "\r\n")
	end := strings.Index(rest, delim)
	if end == -1 {
		return meta, "", fmt.Errorf("%w: missing closing delimiter", ErrInvalidFrontmatter)
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	body := strings.TrimLeft(rest[end+len(delim):], "\r\n")
	return meta, body, nil
}
