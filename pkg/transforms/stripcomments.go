package transforms

import (
	"context"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/arthur-debert/spanwrap/pkg/registry"
	"github.com/arthur-debert/spanwrap/pkg/types"
)

// StripCommentsName is the registry name of the comment stripper.
const StripCommentsName = "strip-comments"

// StripComments removes comment nodes at any depth.
type StripComments struct{}

// Name implements types.Transform
func (StripComments) Name() string { return StripCommentsName }

// Apply implements types.Transform
func (StripComments) Apply(ctx context.Context, tree *hast.Root) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCancelled, "strip-comments cancelled")
	}

	removed := 0
	hast.Walk(tree, func(n hast.Node) hast.VisitAction {
		children := hast.Children(n)
		if len(children) == 0 {
			return hast.Continue
		}
		kept := make([]hast.Node, 0, len(children))
		for _, c := range children {
			if o, ok := c.(*hast.Other); ok && o.Type == hast.OtherComment {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) != len(children) {
			hast.SetChildren(n, kept)
		}
		return hast.Continue
	})

	logger := logging.GetLogger("transforms.comments")
	logger.Debug().Int("removed", removed).Msg("Applied strip-comments")
	return nil
}

func init() {
	registry.MustRegisterPlugin(types.Plugin{
		Name:        StripCommentsName,
		Description: "Remove HTML comments from the document",
		Factory: func(options map[string]interface{}) (types.Transform, error) {
			if err := checkOptions(StripCommentsName, options); err != nil {
				return nil, err
			}
			return StripComments{}, nil
		},
	})
}
