package testutil

import (
	"testing"

	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/google/go-cmp/cmp"
)

// Root builds a document root.
func Root(children ...hast.Node) *hast.Root {
	return hast.NewRoot(children...)
}

// El builds an element without attributes.
func El(tag string, children ...hast.Node) *hast.Element {
	return hast.NewElement(tag, children...)
}

// ElAttrs builds an element with attributes given as key/value pairs.
func ElAttrs(tag string, kv []string, children ...hast.Node) *hast.Element {
	el := hast.NewElement(tag, children...)
	for i := 0; i+1 < len(kv); i += 2 {
		el.Attrs = append(el.Attrs, hast.Attr{Key: kv[i], Val: kv[i+1]})
	}
	return el
}

// P builds a paragraph.
func P(children ...hast.Node) *hast.Element {
	return El("p", children...)
}

// Span builds a span, the shape produced around wrapped text runs.
func Span(children ...hast.Node) *hast.Element {
	return El("span", children...)
}

// T builds a text node.
func T(value string) *hast.Text {
	return hast.NewText(value)
}

// Br builds a line break.
func Br() *hast.Element {
	return El("br")
}

// Comment builds a comment node.
func Comment(data string) *hast.Other {
	return hast.NewComment(data)
}

// AssertTreeEqual fails the test with a structural diff when the trees differ.
func AssertTreeEqual(t *testing.T, want, got hast.Node) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}
