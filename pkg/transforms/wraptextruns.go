package transforms

import (
	"context"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"github.com/arthur-debert/spanwrap/pkg/registry"
	"github.com/arthur-debert/spanwrap/pkg/types"
	"github.com/arthur-debert/spanwrap/pkg/wraptext"
)

// WrapTextRunsName is the registry name of the text run wrapper.
const WrapTextRunsName = "wrap-text-runs"

// WrapTextRuns wraps bare text runs of block elements in span elements.
type WrapTextRuns struct {
	wrapper *wraptext.Wrapper
}

// NewWrapTextRuns builds the transform from plugin options. The only
// option is "policy", one of "guarded" (default) or "unconditional".
func NewWrapTextRuns(options map[string]interface{}) (*WrapTextRuns, error) {
	if err := checkOptions(WrapTextRunsName, options, "policy"); err != nil {
		return nil, err
	}
	name, err := stringOption(options, "policy")
	if err != nil {
		return nil, err
	}
	policy, err := wraptext.ParsePolicy(name)
	if err != nil {
		return nil, err
	}
	return &WrapTextRuns{wrapper: wraptext.New(wraptext.WithPolicy(policy))}, nil
}

// Name implements types.Transform
func (w *WrapTextRuns) Name() string { return WrapTextRunsName }

// Policy returns the configured wrap policy.
func (w *WrapTextRuns) Policy() wraptext.Policy { return w.wrapper.Policy() }

// Apply implements types.Transform
func (w *WrapTextRuns) Apply(ctx context.Context, tree *hast.Root) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCancelled, "wrap-text-runs cancelled")
	}
	blocks, wrapped := w.wrapper.WrapCount(tree)

	logger := logging.GetLogger("transforms.wrap")
	logger.Debug().
		Int("blocks", blocks).
		Int("wrapped", wrapped).
		Msg("Applied wrap-text-runs")
	return nil
}

func init() {
	registry.MustRegisterPlugin(types.Plugin{
		Name:        WrapTextRunsName,
		Description: "Wrap bare text runs of p, li, h1-h6, td, th, blockquote and figcaption in span",
		Factory: func(options map[string]interface{}) (types.Transform, error) {
			return NewWrapTextRuns(options)
		},
	})
}

var _ types.Transform = (*WrapTextRuns)(nil)
