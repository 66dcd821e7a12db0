package plugins

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/spanwrap/internal/cli"
	"github.com/arthur-debert/spanwrap/pkg/registry"
	"github.com/arthur-debert/spanwrap/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewCommand creates the plugins command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "plugins",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd, nil)
			if err != nil {
				return err
			}

			table, err := Table(registry.ListPlugins(), cfg.Pipeline.Plugins)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

// Table renders plugins as a table, numbering those in enabled by run order.
func Table(plugins []types.Plugin, enabled []string) (string, error) {
	order := make(map[string]string, len(enabled))
	for i, name := range enabled {
		order[name] = strconv.Itoa(i + 1)
	}

	data := pterm.TableData{{MsgHeaderName, MsgHeaderOrder, MsgHeaderSummary}}
	for _, p := range plugins {
		pos, ok := order[p.Name]
		if !ok {
			pos = MsgDisabled
		}
		data = append(data, []string{p.Name, pos, p.Description})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
