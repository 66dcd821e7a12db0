package pipeline

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/arthur-debert/spanwrap/pkg/registry"
	"github.com/arthur-debert/spanwrap/pkg/render"
	"github.com/arthur-debert/spanwrap/pkg/types"
	"github.com/yuin/goldmark"
)

// Source is one input document.
type Source struct {
	// Name is a path or label used for format detection and messages
	Name    string
	Content []byte
	// Format overrides input.format when set
	Format string
}

// Document is a rendered source.
type Document struct {
	Name   string
	Format string // detected input format
	Meta   map[string]interface{}
	Tree   *hast.Root
	Output []byte
}

// Pipeline renders sources with a fixed configuration. It is safe for
// concurrent use as long as the configured transforms are.
type Pipeline struct {
	cfg        *config.Config
	md         goldmark.Markdown
	transforms []types.Transform
}

// New builds a pipeline, instantiating every transform in
// cfg.Pipeline.Plugins. A nil cfg uses the global configuration.
func New(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Get()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg: cfg,
		md:  newMarkdown(cfg.Markdown),
	}
	for _, name := range cfg.Pipeline.Plugins {
		t, err := registry.NewTransform(name, cfg.PluginOptions(name))
		if err != nil {
			return nil, err
		}
		p.transforms = append(p.transforms, t)
	}
	return p, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() *config.Config {
	return p.cfg
}

// Transforms returns the transform names in run order.
func (p *Pipeline) Transforms() []string {
	names := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		names[i] = t.Name()
	}
	return names
}

// DetectFormat resolves the input format of a source named name. Only
// "auto" looks at the extension.
func DetectFormat(name, format string) string {
	if format != "" && format != config.FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return config.FormatMarkdown
	}
	return config.FormatHTML
}

// Render runs src through every stage.
func (p *Pipeline) Render(ctx context.Context, src Source) (*Document, error) {
	logger := logging.GetLogger("pipeline").With().Str("source", src.Name).Logger()
	done := logging.LogOperationStart(logger, "render")
	defer done()

	format := src.Format
	if format == "" {
		format = p.cfg.Input.Format
	}
	doc := &Document{Name: src.Name, Format: DetectFormat(src.Name, format)}
	content := src.Content

	if doc.Format == config.FormatMarkdown {
		if p.cfg.Markdown.FrontMatter {
			meta, body, err := SplitFrontMatter(content)
			if err != nil {
				return nil, withSource(err, src.Name)
			}
			doc.Meta, content = meta, body
		}

		converted, err := convertMarkdown(p.md, content)
		if err != nil {
			return nil, withSource(err, src.Name)
		}
		content = converted
	}

	fragment := p.cfg.Output.Fragment
	tree, err := hast.ParseHTML(bytes.NewReader(content), fragment)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParseHTML, "failed to parse HTML").WithDetail("source", src.Name)
	}
	doc.Tree = tree
	if !fragment {
		setTitle(tree, doc.Meta)
	}

	for _, t := range p.transforms {
		if err := t.Apply(ctx, tree); err != nil {
			return nil, withSource(err, src.Name)
		}
		logger.Trace().Str("transform", t.Name()).Msg("Transform applied")
	}

	if p.cfg.Output.Sanitize {
		if err := sanitizeBody(tree); err != nil {
			return nil, withSource(err, src.Name)
		}
	}

	var out bytes.Buffer
	switch p.cfg.Output.Format {
	case config.FormatXHTML:
		err = render.XHTML(&out, tree, fragment, p.cfg.Output.Indent)
	default:
		err = render.HTML(&out, tree, fragment)
	}
	if err != nil {
		return nil, withSource(err, src.Name)
	}
	doc.Output = out.Bytes()

	logger.Debug().
		Str("format", doc.Format).
		Int("bytes", len(doc.Output)).
		Msg("Rendered source")
	return doc, nil
}

// sanitizeBody runs the body through bluemonday and parses the result back.
func sanitizeBody(tree *hast.Root) error {
	var buf bytes.Buffer
	for _, n := range render.Body(tree) {
		if err := hast.RenderHTML(&buf, n); err != nil {
			return errors.Wrap(err, errors.ErrRenderHTML, "failed to render body for sanitizing")
		}
	}
	clean, err := hast.ParseHTML(bytes.NewReader(render.Sanitize(buf.Bytes())), true)
	if err != nil {
		return errors.Wrap(err, errors.ErrParseHTML, "failed to parse sanitized body")
	}
	render.SetBody(tree, clean.Children)
	return nil
}

// setTitle adds a title element from front matter when the head has none.
func setTitle(tree *hast.Root, meta map[string]interface{}) {
	title, ok := meta["title"].(string)
	if !ok || title == "" {
		return
	}
	head := hast.FindElement(tree, "head")
	if head == nil || hast.FindElement(head, "title") != nil {
		return
	}
	head.Children = append(head.Children, hast.NewElement("title", hast.NewText(title)))
}

func withSource(err error, name string) error {
	if se, ok := err.(*errors.SpanwrapError); ok {
		return se.WithDetail("source", name)
	}
	return errors.Wrap(err, errors.ErrInternal, "render failed").WithDetail("source", name)
}
