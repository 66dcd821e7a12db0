package hast

// VisitAction tells Visit how to continue after a node was visited.
type VisitAction int

const (
	// Continue descends into the node's children.
	Continue VisitAction = iota
	// SkipChildren moves on to the next sibling.
	SkipChildren
	// Stop ends the traversal.
	Stop
)

// Visit calls fn for every node of the given kind in pre-order.
//
// Children are read after fn returns, so a visitor that replaces the
// children of the node it was handed has the traversal continue over the
// replacement slice. Nil nodes are skipped.
func Visit(n Node, kind Kind, fn func(Node) VisitAction) {
	walk(n, func(c Node) VisitAction {
		if c.Kind() != kind {
			return Continue
		}
		return fn(c)
	})
}

// Walk calls fn for every node of the tree in pre-order.
func Walk(n Node, fn func(Node) VisitAction) {
	walk(n, fn)
}

func walk(n Node, fn func(Node) VisitAction) bool {
	if isNil(n) {
		return true
	}
	switch fn(n) {
	case Stop:
		return false
	case SkipChildren:
		return true
	}
	for _, c := range Children(n) {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// isNil catches typed nil pointers stored in a Node.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Root:
		return v == nil
	case *Element:
		return v == nil
	case *Text:
		return v == nil
	case *Other:
		return v == nil
	}
	return false
}
