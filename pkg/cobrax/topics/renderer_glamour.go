package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// ResolveStyle maps "auto" or an empty style to "dark" or "light" from the
// terminal background
func ResolveStyle(style string) string {
	if style != "" && style != "auto" {
		return style
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// RenderMarkdown renders markdown for the terminal with the given style and
// word wrap width.
func RenderMarkdown(content, style string, width int) (string, error) {
	options := []glamour.TermRendererOption{
		glamour.WithStylePath(ResolveStyle(style)),
		glamour.WithEmoji(),
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// Render converts markdown to terminal output. Other formats and render
// failures fall back to the raw content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	rendered, err := RenderMarkdown(content, r.Style, r.Width)
	if err != nil {
		return content
	}
	return rendered
}
