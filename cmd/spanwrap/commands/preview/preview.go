package preview

import (
	"fmt"

	"github.com/arthur-debert/spanwrap/internal/cli"
	"github.com/arthur-debert/spanwrap/pkg/cobrax/topics"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/pipeline"
	"github.com/spf13/cobra"
)

// NewCommand creates the preview command
func NewCommand() *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:     "preview <file.md>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := cli.ReadInput(cmd, args[0])
			if err != nil {
				return err
			}
			_, body, err := pipeline.SplitFrontMatter(content)
			if err != nil {
				return err
			}

			rendered, err := topics.RenderMarkdown(string(body), style, width)
			if err != nil {
				return errors.Wrap(err, errors.ErrParseMarkdown, "failed to render preview")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", MsgFlagStyle)
	cmd.Flags().IntVar(&width, "width", 80, MsgFlagWidth)
	return cmd
}
