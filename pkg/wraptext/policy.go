package wraptext

import (
	"fmt"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
)

// Policy decides whether a block's children are rewritten.
type Policy int

const (
	// PolicyGuarded rewrites only mixed inline content. See Qualifies.
	PolicyGuarded Policy = iota
	// PolicyUnconditional rewrites the children of every block that has at
	// least one child. It re-wraps on repeated passes and is kept for
	// output compatibility with older renders.
	PolicyUnconditional
)

func (p Policy) String() string {
	switch p {
	case PolicyGuarded:
		return "guarded"
	case PolicyUnconditional:
		return "unconditional"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a policy name to its Policy. The empty string selects
// PolicyGuarded.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "guarded":
		return PolicyGuarded, nil
	case "unconditional":
		return PolicyUnconditional, nil
	}
	return PolicyGuarded, errors.Newf(errors.ErrInvalidInput, "unknown wrap policy %q", name).
		WithDetail("policy", name)
}

func (p Policy) qualifies(children []hast.Node) bool {
	if p == PolicyUnconditional {
		return len(children) > 0
	}
	return Qualifies(children)
}
