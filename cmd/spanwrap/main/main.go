package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/spanwrap/cmd/spanwrap"
	"github.com/arthur-debert/spanwrap/pkg/core"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/style"
)

func main() {
	// Registers the built-in transforms and installs the default config
	core.MustInitialize()

	rootCmd := spanwrap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render("Error", fmt.Sprintf("Error: %v", err)))

		details := errors.GetErrorDetails(err)
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintln(os.Stderr, style.Render("Muted", fmt.Sprintf("  %s: %v", k, details[k])))
		}

		os.Exit(1)
	}
}
