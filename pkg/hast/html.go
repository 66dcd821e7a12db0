package hast

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML converts an x/net/html tree into a Root. A document node becomes
// the root itself; any other node becomes the single child of a new root.
func FromHTML(n *html.Node) *Root {
	root := &Root{}
	if n == nil {
		return root
	}
	if n.Type == html.DocumentNode {
		root.Children = fromHTMLChildren(n)
		return root
	}
	if c := fromHTML(n); c != nil {
		root.Children = []Node{c}
	}
	return root
}

// FromHTMLNodes converts a detached node list, as returned by
// html.ParseFragment, into a Root.
func FromHTMLNodes(nodes []*html.Node) *Root {
	root := &Root{}
	for _, n := range nodes {
		if c := fromHTML(n); c != nil {
			root.Children = append(root.Children, c)
		}
	}
	return root
}

func fromHTMLChildren(n *html.Node) []Node {
	var children []Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if converted := fromHTML(c); converted != nil {
			children = append(children, converted)
		}
	}
	return children
}

func fromHTML(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return &Text{Value: n.Data}
	case html.ElementNode:
		return &Element{
			Tag:       n.Data,
			Namespace: n.Namespace,
			Attrs:     fromHTMLAttrs(n.Attr),
			Children:  fromHTMLChildren(n),
		}
	case html.CommentNode:
		return &Other{Type: OtherComment, Data: n.Data}
	case html.DoctypeNode:
		return &Other{Type: OtherDoctype, Data: n.Data, Attrs: fromHTMLAttrs(n.Attr)}
	case html.RawNode:
		return &Other{Type: OtherRaw, Data: n.Data}
	case html.DocumentNode:
		return &Root{Children: fromHTMLChildren(n)}
	}
	return nil
}

func fromHTMLAttrs(attrs []html.Attribute) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
	}
	return out
}

// ToHTML builds a fresh x/net/html tree from n. A Root becomes a document
// node. Nil input yields nil.
func ToHTML(n Node) *html.Node {
	if isNil(n) {
		return nil
	}
	switch v := n.(type) {
	case *Root:
		doc := &html.Node{Type: html.DocumentNode}
		appendHTMLChildren(doc, v.Children)
		return doc
	case *Element:
		el := &html.Node{
			Type:      html.ElementNode,
			Data:      v.Tag,
			DataAtom:  atom.Lookup([]byte(v.Tag)),
			Namespace: v.Namespace,
			Attr:      toHTMLAttrs(v.Attrs),
		}
		appendHTMLChildren(el, v.Children)
		return el
	case *Text:
		return &html.Node{Type: html.TextNode, Data: v.Value}
	case *Other:
		switch v.Type {
		case OtherDoctype:
			return &html.Node{Type: html.DoctypeNode, Data: v.Data, Attr: toHTMLAttrs(v.Attrs)}
		case OtherRaw:
			return &html.Node{Type: html.RawNode, Data: v.Data}
		default:
			return &html.Node{Type: html.CommentNode, Data: v.Data}
		}
	}
	return nil
}

func appendHTMLChildren(parent *html.Node, children []Node) {
	for _, c := range children {
		if hn := ToHTML(c); hn != nil {
			parent.AppendChild(hn)
		}
	}
}

func toHTMLAttrs(attrs []Attr) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]html.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = html.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val}
	}
	return out
}

// ParseHTML parses r into a Root. With fragment set, r is parsed as the
// contents of a <body> element and no html/head/body scaffolding is added.
func ParseHTML(r io.Reader, fragment bool) (*Root, error) {
	if !fragment {
		doc, err := html.Parse(r)
		if err != nil {
			return nil, err
		}
		return FromHTML(doc), nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, err
	}
	return FromHTMLNodes(nodes), nil
}

// RenderHTML writes n as HTML.
func RenderHTML(w io.Writer, n Node) error {
	hn := ToHTML(n)
	if hn == nil {
		return nil
	}
	return html.Render(w, hn)
}

// FindElement returns the first element with the given tag in pre-order.
func FindElement(n Node, tag string) *Element {
	var found *Element
	Visit(n, KindElement, func(c Node) VisitAction {
		if el := c.(*Element); el.Tag == tag {
			found = el
			return Stop
		}
		return Continue
	})
	return found
}
