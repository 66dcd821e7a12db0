package wraptext

import (
	"sort"
	"strings"
	"unicode"

	"github.com/arthur-debert/spanwrap/pkg/hast"
)

const (
	// WrapperTag is the tag of the inline element injected around text runs.
	WrapperTag = "span"
	// LineBreakTag does not count as mixed inline content.
	LineBreakTag = "br"
)

var blockTags = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range []string{
		"p", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"td", "th",
		"blockquote", "figcaption",
	} {
		set[tag] = struct{}{}
	}
	return set
}()

// BlockTags returns the block tags whose children are considered, sorted.
func BlockTags() []string {
	tags := make([]string, 0, len(blockTags))
	for tag := range blockTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// IsBlock reports whether tag is one of the block tags.
func IsBlock(tag string) bool {
	_, ok := blockTags[tag]
	return ok
}

// IsCandidate reports whether n is an element with a block tag.
func IsCandidate(n hast.Node) bool {
	el, ok := n.(*hast.Element)
	return ok && el != nil && IsBlock(el.Tag)
}

// IsNonEmptyText reports whether n is a text node with non-blank content.
func IsNonEmptyText(n hast.Node) bool {
	t, ok := n.(*hast.Text)
	return ok && t != nil && strings.TrimFunc(t.Value, IsBlankRune) != ""
}

// IsBlankRune reports whether r counts as blank in text runs: Unicode white
// space and the byte order mark U+FEFF, but not NEL (U+0085).
func IsBlankRune(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// isInlineContent reports whether n is an element other than a line break.
func isInlineContent(n hast.Node) bool {
	el, ok := n.(*hast.Element)
	return ok && el != nil && el.Tag != LineBreakTag
}

// Qualifies reports whether a block's children are rewritten under the
// guarded policy.
func Qualifies(children []hast.Node) bool {
	if len(children) <= 1 {
		return false
	}
	var hasText, hasInline bool
	for _, c := range children {
		switch {
		case IsNonEmptyText(c):
			hasText = true
		case isInlineContent(c):
			hasInline = true
		}
		if hasText && hasInline {
			return true
		}
	}
	return false
}

// wrapChild returns a new wrapper around c when c is a non-blank text node,
// and c itself otherwise.
func wrapChild(c hast.Node) hast.Node {
	if !IsNonEmptyText(c) {
		return c
	}
	return &hast.Element{Tag: WrapperTag, Children: []hast.Node{c}}
}

// WrapChildren maps children to a new slice of the same length in which
// every non-blank text node is wrapped. The input slice is not modified.
func WrapChildren(children []hast.Node) []hast.Node {
	out := make([]hast.Node, len(children))
	for i, c := range children {
		out[i] = wrapChild(c)
	}
	return out
}

// Wrap applies the guarded policy to every block element of tree, in place,
// and returns tree.
func Wrap(tree hast.Node) hast.Node {
	return defaultWrapper.Wrap(tree)
}

var defaultWrapper = New()

// Wrapper runs the wrap pass with a fixed policy. The zero value is not
// usable; construct one with New.
type Wrapper struct {
	policy Policy
}

// Option configures a Wrapper.
type Option func(*Wrapper)

// WithPolicy selects the child-list policy.
func WithPolicy(p Policy) Option {
	return func(w *Wrapper) {
		w.policy = p
	}
}

// New returns a Wrapper using PolicyGuarded unless overridden.
func New(opts ...Option) *Wrapper {
	w := &Wrapper{policy: PolicyGuarded}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Policy returns the policy in use.
func (w *Wrapper) Policy() Policy {
	return w.policy
}

// Wrap rewrites tree in place and returns it.
func (w *Wrapper) Wrap(tree hast.Node) hast.Node {
	_, _ = w.WrapCount(tree)
	return tree
}

// WrapCount rewrites tree in place and reports how many blocks were
// rewritten and how many wrappers were created.
func (w *Wrapper) WrapCount(tree hast.Node) (blocks, wrapped int) {
	hast.Visit(tree, hast.KindElement, func(n hast.Node) hast.VisitAction {
		el := n.(*hast.Element)
		if !IsBlock(el.Tag) || !w.policy.qualifies(el.Children) {
			return hast.Continue
		}

		out := WrapChildren(el.Children)
		for i := range out {
			if out[i] != el.Children[i] {
				wrapped++
			}
		}
		el.Children = out
		blocks++
		return hast.Continue
	})

	return blocks, wrapped
}
