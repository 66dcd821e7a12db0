package render

import (
	"fmt"

	"github.com/arthur-debert/spanwrap/internal/cli"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/arthur-debert/spanwrap/pkg/pipeline"
	"github.com/arthur-debert/spanwrap/pkg/style"
	"github.com/spf13/cobra"
)

// flagKeys maps render flags to configuration keys
var flagKeys = map[string]string{
	"format":   "output.format",
	"input":    "input.format",
	"fragment": "output.fragment",
	"sanitize": "output.sanitize",
	"policy":   "wrap.policy",
	"plugins":  "pipeline.plugins",
	"indent":   "output.indent",
}

// NewCommand creates the render command
func NewCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "render [files...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", MsgFlagOutDir)
	AddPipelineFlags(cmd)
	cmd.Flags().String("input", "auto", MsgFlagInput)
	cmd.Flags().StringSlice("plugins", nil, MsgFlagPlugins)

	return cmd
}

// AddPipelineFlags registers the output flags shared with the wrap command.
func AddPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "html", MsgFlagFormat)
	cmd.Flags().Bool("fragment", true, MsgFlagFragment)
	cmd.Flags().Bool("sanitize", false, MsgFlagSanitize)
	cmd.Flags().String("policy", "guarded", MsgFlagPolicy)
	cmd.Flags().Int("indent", 0, MsgFlagIndent)
}

// FlagKeys returns the flag to configuration key mapping
func FlagKeys() map[string]string {
	return flagKeys
}

func run(cmd *cobra.Command, args []string, outDir string) error {
	logger := logging.GetLogger("cmd.render")

	overrides, err := cli.Overrides(cmd, flagKeys)
	if err != nil {
		return err
	}
	cfg, err := cli.LoadConfig(cmd, overrides)
	if err != nil {
		return err
	}
	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	logger.Info().Strs("transforms", p.Transforms()).Int("files", len(args)).Msg("Starting render")

	out := cmd.OutOrStdout()
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		content, name, err := cli.ReadInput(cmd, "-")
		if err != nil {
			return err
		}
		doc, err := p.Render(cmd.Context(), pipeline.Source{Name: name, Content: content})
		if err != nil {
			return err
		}
		_, err = out.Write(doc.Output)
		return err
	}

	results, err := p.RenderFiles(cmd.Context(), args, outDir)
	if err != nil {
		return err
	}
	for _, r := range results {
		if outDir != "" {
			fmt.Fprintf(out, MsgWroteFile, style.Render("FilePath", r.Path), style.Render("Arrow", "->"), style.Render("Success", r.OutPath))
			continue
		}
		if _, err := out.Write(r.Document.Output); err != nil {
			return err
		}
	}
	return nil
}
