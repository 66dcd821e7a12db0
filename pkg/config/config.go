package config

import (
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/wraptext"
)

// Input formats
const (
	FormatAuto     = "auto"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatXHTML    = "xhtml"
)

// Config is the effective spanwrap configuration.
type Config struct {
	Input    Input                             `koanf:"input" toml:"input"`
	Markdown Markdown                          `koanf:"markdown" toml:"markdown"`
	Pipeline Pipeline                          `koanf:"pipeline" toml:"pipeline"`
	Wrap     Wrap                              `koanf:"wrap" toml:"wrap"`
	Output   Output                            `koanf:"output" toml:"output"`
	Render   Render                            `koanf:"render" toml:"render"`
	Plugins  map[string]map[string]interface{} `koanf:"plugins" toml:"plugins,omitempty"`
}

// Input selects how sources are parsed.
type Input struct {
	Format string `koanf:"format" toml:"format"`
}

// Markdown holds goldmark settings
type Markdown struct {
	GFM         bool `koanf:"gfm" toml:"gfm"`
	Emoji       bool `koanf:"emoji" toml:"emoji"`
	Unsafe      bool `koanf:"unsafe" toml:"unsafe"`
	FrontMatter bool `koanf:"frontmatter" toml:"frontmatter"`
}

// Pipeline lists the transforms to run, in order.
type Pipeline struct {
	Plugins []string `koanf:"plugins" toml:"plugins"`
}

// Wrap configures the wrap-text-runs transform.
type Wrap struct {
	Policy string `koanf:"policy" toml:"policy"`
}

// Output controls serialization of the transformed tree.
type Output struct {
	Format   string `koanf:"format" toml:"format"`
	Fragment bool   `koanf:"fragment" toml:"fragment"`
	Sanitize bool   `koanf:"sanitize" toml:"sanitize"`
	Indent   int    `koanf:"indent" toml:"indent"`
}

// Render holds batch rendering settings.
type Render struct {
	Concurrency int `koanf:"concurrency" toml:"concurrency"`
}

// Default returns the configuration described by the embedded defaults.
func Default() *Config {
	cfg, err := loadDefaults()
	if err != nil {
		// embedded file is part of the build
		panic("invalid embedded defaults: " + err.Error())
	}
	return cfg
}

// PluginOptions returns the options table for a transform. For
// wrap-text-runs the wrap.policy setting is merged in unless the table sets
// its own policy.
func (c *Config) PluginOptions(name string) map[string]interface{} {
	opts := make(map[string]interface{})
	for k, v := range c.Plugins[name] {
		opts[k] = v
	}
	if name == "wrap-text-runs" && c.Wrap.Policy != "" {
		if _, ok := opts["policy"]; !ok {
			opts["policy"] = c.Wrap.Policy
		}
	}
	return opts
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Input.Format {
	case FormatAuto, FormatMarkdown, FormatHTML:
	default:
		return invalid("input.format", c.Input.Format, "must be auto, markdown or html")
	}

	switch c.Output.Format {
	case FormatHTML, FormatXHTML:
	default:
		return invalid("output.format", c.Output.Format, "must be html or xhtml")
	}

	if _, err := wraptext.ParsePolicy(c.Wrap.Policy); err != nil {
		return invalid("wrap.policy", c.Wrap.Policy, "must be guarded or unconditional")
	}

	if c.Output.Indent < 0 {
		return invalid("output.indent", c.Output.Indent, "must not be negative")
	}
	if c.Render.Concurrency < 1 {
		return invalid("render.concurrency", c.Render.Concurrency, "must be at least 1")
	}

	for _, name := range c.Pipeline.Plugins {
		if name == "" {
			return invalid("pipeline.plugins", name, "plugin names must not be empty")
		}
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigInvalid, "invalid %s %v: %s", key, value, reason).
		WithDetails(map[string]interface{}{"key": key, "value": value})
}
