package man

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewCommand creates the man command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir)
			}

			root := cmd.Root()
			header := &doc.GenManHeader{
				Title:   strings.ToUpper(root.Name()),
				Section: "1",
			}
			if err := doc.GenManTree(root, header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to generate man pages")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgDone, dir)
			return err
		},
	}
}
