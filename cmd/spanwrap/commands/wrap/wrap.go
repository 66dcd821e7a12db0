package wrap

import (
	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/render"
	"github.com/arthur-debert/spanwrap/internal/cli"
	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/pipeline"
	"github.com/arthur-debert/spanwrap/pkg/transforms"
	"github.com/spf13/cobra"
)

// NewCommand creates the wrap command
func NewCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:     "wrap [file]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := cli.Overrides(cmd, render.FlagKeys())
			if err != nil {
				return err
			}
			overrides["input.format"] = config.FormatHTML
			overrides["pipeline.plugins"] = []string{transforms.WrapTextRunsName}
			if full {
				overrides["output.fragment"] = false
			}

			cfg, err := cli.LoadConfig(cmd, overrides)
			if err != nil {
				return err
			}
			p, err := pipeline.New(cfg)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			content, label, err := cli.ReadInput(cmd, name)
			if err != nil {
				return err
			}
			doc, err := p.Render(cmd.Context(), pipeline.Source{Name: label, Content: content})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc.Output)
			return err
		},
	}

	render.AddPipelineFlags(cmd)
	cmd.Flags().BoolVar(&full, "full", false, MsgFlagFull)
	return cmd
}
