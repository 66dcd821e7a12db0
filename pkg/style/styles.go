// Package style holds the lipgloss styles used for terminal output.
//
// Styles have semantic names and adaptive colors that follow the terminal
// background. Definitions live in the embedded styles.yaml and can be
// replaced with Load.
package style

import (
	_ "embed"
	"sync"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	MarginLeft int    `yaml:"marginLeft,omitempty"`
}

// Config is a complete styles file
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	mu       sync.RWMutex
	registry map[string]lipgloss.Style
)

func init() {
	if err := Load(embeddedStyles); err != nil {
		registry = map[string]lipgloss.Style{}
	}
}

// Load replaces the registered styles with the ones defined in data.
func Load(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		styles[name] = build(def, colors)
	}

	mu.Lock()
	registry = styles
	mu.Unlock()
	return nil
}

// Reset restores the embedded styles.
func Reset() {
	_ = Load(embeddedStyles)
}

func build(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	s := lipgloss.NewStyle()
	if def.Bold {
		s = s.Bold(true)
	}
	if def.Italic {
		s = s.Italic(true)
	}
	if def.Underline {
		s = s.Underline(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		s = s.Foreground(c)
	}
	if c, ok := colors[def.Background]; ok {
		s = s.Background(c)
	}
	if def.MarginLeft > 0 {
		s = s.MarginLeft(def.MarginLeft)
	}
	return s
}

// Get returns the named style, or a plain style when it is not defined.
func Get(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Has reports whether a style with the given name is defined.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Render renders text with the named style.
func Render(name, text string) string {
	return Get(name).Render(text)
}
