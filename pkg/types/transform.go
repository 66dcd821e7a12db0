package types

import (
	"context"

	"github.com/arthur-debert/spanwrap/pkg/hast"
)

// Transform rewrites a document tree in place.
type Transform interface {
	// Name returns the registry name of the transform
	Name() string

	// Apply runs the transform over tree
	Apply(ctx context.Context, tree *hast.Root) error
}

// TransformFactory creates a transform instance with the given options.
// Options come from the [plugins.<name>] table of the configuration.
type TransformFactory func(options map[string]interface{}) (Transform, error)

// Plugin describes a registered transform.
type Plugin struct {
	Name        string
	Description string
	Factory     TransformFactory
}

// TransformFunc adapts a plain function to the Transform interface.
type TransformFunc struct {
	TransformName string
	Fn            func(ctx context.Context, tree *hast.Root) error
}

// Name implements Transform
func (f TransformFunc) Name() string { return f.TransformName }

// Apply implements Transform
func (f TransformFunc) Apply(ctx context.Context, tree *hast.Root) error {
	return f.Fn(ctx, tree)
}
