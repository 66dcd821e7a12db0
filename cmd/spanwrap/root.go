package spanwrap

import (
	"fmt"

	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/config"
	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/man"
	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/plugins"
	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/preview"
	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/render"
	topicscmd "github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/topics"
	"github.com/arthur-debert/spanwrap/cmd/spanwrap/commands/wrap"
	"github.com/arthur-debert/spanwrap/internal/cli"
	"github.com/arthur-debert/spanwrap/internal/version"
	"github.com/arthur-debert/spanwrap/pkg/cobrax/topics"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "spanwrap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String(cli.FlagConfig, "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: MsgGroupCore})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(render.NewCommand())
	rootCmd.AddCommand(wrap.NewCommand())
	rootCmd.AddCommand(preview.NewCommand())
	rootCmd.AddCommand(plugins.NewCommand())
	rootCmd.AddCommand(config.NewCommand())
	rootCmd.AddCommand(man.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	tm, err := topics.InitializeFS(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return rootCmd
	}
	rootCmd.AddCommand(topicscmd.NewCommand(tm))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String(cmd.Root().Name()))
		},
	}
}
