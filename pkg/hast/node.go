package hast

import "strings"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindRoot Kind = iota
	KindElement
	KindText
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindOther:
		return "other"
	}
	return "unknown"
}

// Node is a node of the tree. The set of implementations is closed.
type Node interface {
	Kind() Kind
	sealed()
}

// Root is the document node. It carries children but is not an Element.
type Root struct {
	Children []Node
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	Tag       string
	Namespace string // empty for HTML, "svg" or "math" for foreign content
	Attrs     []Attr
	Children  []Node
}

// Attr is a single element attribute.
type Attr struct {
	Namespace string
	Key       string
	Val       string
}

// Text is a run of character data.
type Text struct {
	Value string
}

// OtherType distinguishes the node kinds grouped under Other.
type OtherType int

const (
	OtherComment OtherType = iota
	OtherDoctype
	OtherRaw
)

// Other is any node that carries no element or text semantics.
type Other struct {
	Type  OtherType
	Data  string
	Attrs []Attr // doctype public/system identifiers
}

func (*Root) Kind() Kind    { return KindRoot }
func (*Element) Kind() Kind { return KindElement }
func (*Text) Kind() Kind    { return KindText }
func (*Other) Kind() Kind   { return KindOther }

func (*Root) sealed()    {}
func (*Element) sealed() {}
func (*Text) sealed()    {}
func (*Other) sealed()   {}

// NewRoot returns a root holding children.
func NewRoot(children ...Node) *Root {
	return &Root{Children: children}
}

// NewElement returns an element with no attributes.
func NewElement(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// NewText returns a text node.
func NewText(value string) *Text {
	return &Text{Value: value}
}

// NewComment returns a comment node.
func NewComment(data string) *Other {
	return &Other{Type: OtherComment, Data: data}
}

// Children returns the child slice of a Root or Element, nil otherwise.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Root:
		if v != nil {
			return v.Children
		}
	case *Element:
		if v != nil {
			return v.Children
		}
	}
	return nil
}

// SetChildren replaces the children of a Root or Element. It reports false
// for nodes that cannot hold children.
func SetChildren(n Node, children []Node) bool {
	switch v := n.(type) {
	case *Root:
		if v != nil {
			v.Children = children
			return true
		}
	case *Element:
		if v != nil {
			v.Children = children
			return true
		}
	}
	return false
}

// IsElement reports whether n is a non-nil element with the given tag.
func IsElement(n Node, tag string) bool {
	el, ok := n.(*Element)
	return ok && el != nil && el.Tag == tag
}

// GetAttr returns the value of the first attribute named key.
func (e *Element) GetAttr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent concatenates every text descendant of n in document order.
func TextContent(n Node) string {
	var sb strings.Builder
	Walk(n, func(c Node) VisitAction {
		if t, ok := c.(*Text); ok && t != nil {
			sb.WriteString(t.Value)
		}
		return Continue
	})
	return sb.String()
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Root:
		if v == nil {
			return v
		}
		return &Root{Children: cloneAll(v.Children)}
	case *Element:
		if v == nil {
			return v
		}
		return &Element{
			Tag:       v.Tag,
			Namespace: v.Namespace,
			Attrs:     cloneAttrs(v.Attrs),
			Children:  cloneAll(v.Children),
		}
	case *Text:
		if v == nil {
			return v
		}
		return &Text{Value: v.Value}
	case *Other:
		if v == nil {
			return v
		}
		return &Other{Type: v.Type, Data: v.Data, Attrs: cloneAttrs(v.Attrs)}
	}
	return nil
}

func cloneAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, c := range nodes {
		out[i] = Clone(c)
	}
	return out
}

func cloneAttrs(attrs []Attr) []Attr {
	if attrs == nil {
		return nil
	}
	out := make([]Attr, len(attrs))
	copy(out, attrs)
	return out
}
