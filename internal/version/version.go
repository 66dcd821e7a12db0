package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/spanwrap/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/spanwrap/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/spanwrap/internal/version.Date={{.Date}}
)

// String formats the build information for the version command.
func String(prog string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", prog, Version, Commit, Date)
}
