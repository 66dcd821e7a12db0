package render

import (
	"bytes"
	"io"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
)

// Body returns the nodes that make up the document body: the children of
// the first body element, or the root's children when the tree was parsed
// as a fragment.
func Body(root *hast.Root) []hast.Node {
	if root == nil {
		return nil
	}
	if body := hast.FindElement(root, "body"); body != nil {
		return body.Children
	}
	return root.Children
}

// SetBody replaces the nodes returned by Body.
func SetBody(root *hast.Root, nodes []hast.Node) {
	if root == nil {
		return
	}
	if body := hast.FindElement(root, "body"); body != nil {
		body.Children = nodes
		return
	}
	root.Children = nodes
}

// HTML writes root as HTML. With fragment set only the body contents are
// written.
func HTML(w io.Writer, root *hast.Root, fragment bool) error {
	if root == nil {
		return nil
	}
	if !fragment {
		if err := hast.RenderHTML(w, root); err != nil {
			return errors.Wrap(err, errors.ErrRenderHTML, "failed to render HTML")
		}
		return nil
	}

	for _, n := range Body(root) {
		if err := hast.RenderHTML(w, n); err != nil {
			return errors.Wrap(err, errors.ErrRenderHTML, "failed to render HTML")
		}
	}
	return nil
}

// HTMLString is HTML into a string.
func HTMLString(root *hast.Root, fragment bool) (string, error) {
	var buf bytes.Buffer
	if err := HTML(&buf, root, fragment); err != nil {
		return "", err
	}
	return buf.String(), nil
}
