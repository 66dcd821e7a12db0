package topics

import (
	"github.com/arthur-debert/spanwrap/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

// NewCommand creates the topics command listing the topics known to tm
func NewCommand(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tm.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}
