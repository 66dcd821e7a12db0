// Package cli holds helpers shared by the spanwrap subcommands.
package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/spf13/cobra"
)

// FlagConfig is the persistent flag holding an explicit config file.
const FlagConfig = "config"

// StdinName labels sources read from standard input.
const StdinName = "<stdin>"

// LoadConfig loads the layered configuration, honoring --config, applies
// overrides on top and installs the result as the global configuration.
func LoadConfig(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, error) {
	var file string
	if f := cmd.Flags().Lookup(FlagConfig); f != nil {
		file = f.Value.String()
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: file,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}
	config.Initialize(cfg)
	return cfg, nil
}

// ReadInput reads the named file, or the command's stdin when name is empty
// or "-". It returns the content and a display name.
func ReadInput(cmd *cobra.Command, name string) ([]byte, string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, StdinName, errors.Wrap(err, errors.ErrFileRead, "failed to read stdin")
		}
		return data, StdinName, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		code := errors.ErrFileRead
		if os.IsNotExist(err) {
			code = errors.ErrNotFound
		}
		return nil, name, errors.Wrapf(err, code, "failed to read %s", name).WithDetail("path", name)
	}
	return data, name, nil
}

// Overrides collects config overrides from flags the user actually set.
// keys maps flag names to dotted config keys.
func Overrides(cmd *cobra.Command, keys map[string]string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}

		var (
			v   interface{}
			err error
		)
		switch f.Value.Type() {
		case "bool":
			v, err = cmd.Flags().GetBool(flag)
		case "int":
			v, err = cmd.Flags().GetInt(flag)
		case "stringSlice":
			v, err = cmd.Flags().GetStringSlice(flag)
		default:
			v = f.Value.String()
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid --%s", flag)
		}
		out[key] = v
	}
	return out, nil
}
