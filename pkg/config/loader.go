package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "SPANWRAP_"
	userConfigName = "spanwrap/config.toml"
)

// ProjectConfigNames are looked up in the working directory, first match wins.
var ProjectConfigNames = []string{".spanwrap.toml", "spanwrap.toml"}

// LoadOptions controls which files Load reads.
type LoadOptions struct {
	// ConfigFile replaces the project config lookup. It must exist.
	ConfigFile string
	// WorkDir is searched for project config files. Defaults to ".".
	WorkDir string
	// Overrides are applied last, keyed by dotted path ("output.format").
	Overrides map[string]interface{}
	// SkipUser disables the XDG user config layer.
	SkipUser bool
	// SkipEnv disables SPANWRAP_* environment variables.
	SkipEnv bool
}

// Load builds the effective configuration from all layers and validates it.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	var sources []string

	// 2. User config
	if !opts.SkipUser {
		if path, ok := userConfigPath(); ok {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			sources = append(sources, path)
		}
	}

	// 3. Project config, or the explicit --config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		sources = append(sources, opts.ConfigFile)
	} else if path, ok := projectConfigPath(opts.WorkDir); ok {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}

	// 4. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 5. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Strs("plugins", cfg.Pipeline.Plugins).
		Str("policy", cfg.Wrap.Policy).
		Msg("Configuration loaded")
	return cfg, nil
}

func loadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// trimSliceHookFunc trims entries of string slices so that
// SPANWRAP_PIPELINE_PLUGINS="a, b" works.
func trimSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.Slice || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		out := make([]string, 0, len(items))
		for _, s := range items {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	}
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func userConfigPath() (string, bool) {
	path, err := xdg.SearchConfigFile(userConfigName)
	if err != nil {
		return "", false
	}
	return path, true
}

func projectConfigPath(dir string) (string, bool) {
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
