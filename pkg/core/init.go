package core

import (
	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/arthur-debert/spanwrap/pkg/registry"

	// Import transform packages to register their plugins
	_ "github.com/arthur-debert/spanwrap/pkg/transforms"
)

// Initialize sets up the core system by:
// 1. Importing transform packages to register their plugins
// 2. Initializing configuration from the embedded defaults
//
// This function should be called at application startup before
// building any pipeline.
func Initialize() error {
	logger := logging.GetLogger("core.init")

	config.Initialize(nil)

	plugins := registry.ListPlugins()
	if len(plugins) == 0 {
		return errors.New(errors.ErrInternal, "no transform plugins registered")
	}

	logger.Debug().Int("plugins", len(plugins)).Msg("Core initialization completed")
	return nil
}

// MustInitialize calls Initialize and panics on error.
// This is useful for main() functions where initialization failure
// should terminate the program.
func MustInitialize() {
	if err := Initialize(); err != nil {
		panic("Core initialization failed: " + err.Error())
	}
}
