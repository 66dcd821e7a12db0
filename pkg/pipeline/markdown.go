package pipeline

import (
	"bytes"

	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// newMarkdown builds a goldmark converter for the markdown settings.
func newMarkdown(cfg config.Markdown) goldmark.Markdown {
	var exts []goldmark.Extender
	if cfg.GFM {
		exts = append(exts, extension.GFM)
	}
	if cfg.Emoji {
		exts = append(exts, emoji.Emoji)
	}

	var rendererOpts []renderer.Option
	if cfg.Unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

func convertMarkdown(md goldmark.Markdown, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrParseMarkdown, "failed to convert markdown")
	}
	return buf.Bytes(), nil
}
