package config

import (
	"fmt"
	"os"

	"github.com/arthur-debert/spanwrap/internal/cli"
	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command
func NewCommand() *cobra.Command {
	var template, write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if write {
				path := config.ProjectConfigNames[0]
				if _, err := os.Stat(path); err == nil {
					return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).WithDetail("path", path)
				}
				if err := os.WriteFile(path, []byte(config.GenerateConfigContent()), 0644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
				}
				_, err := fmt.Fprintf(out, MsgWritten, path)
				return err
			}

			if template {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := cli.LoadConfig(cmd, nil)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
