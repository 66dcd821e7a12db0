package render

import (
	"io"
	"strings"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/beevik/etree"
)

const (
	xhtmlNamespace = "http://www.w3.org/1999/xhtml"
	svgNamespace   = "http://www.w3.org/2000/svg"
	mathNamespace  = "http://www.w3.org/1998/Math/MathML"
)

// voidElements never have content and are written self-closed.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// XHTML writes root as XHTML. Full documents start with an XML declaration
// and carry the XHTML namespace on the html element; fragments are written
// bare. A positive indent pretty-prints with that many spaces, which
// discards whitespace-only text between elements.
func XHTML(w io.Writer, root *hast.Root, fragment bool, indent int) error {
	if root == nil {
		return nil
	}

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	if fragment {
		appendXML(&doc.Element, Body(root))
	} else {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		appendXML(&doc.Element, root.Children)
		if html := doc.SelectElement("html"); html != nil && html.SelectAttr("xmlns") == nil {
			html.CreateAttr("xmlns", xhtmlNamespace)
		}
	}

	if indent > 0 {
		settings := etree.NewIndentSettings()
		settings.Spaces = indent
		settings.PreserveLeafWhitespace = true
		doc.IndentWithSettings(settings)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrRenderXHTML, "failed to write XHTML")
	}
	return nil
}

// XHTMLString is XHTML into a string.
func XHTMLString(root *hast.Root, fragment bool, indent int) (string, error) {
	var sb strings.Builder
	if err := XHTML(&sb, root, fragment, indent); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func appendXML(parent *etree.Element, nodes []hast.Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *hast.Element:
			if v == nil {
				continue
			}
			el := parent.CreateElement(v.Tag)
			for _, a := range v.Attrs {
				key := a.Key
				if a.Namespace != "" {
					key = a.Namespace + ":" + a.Key
				}
				el.CreateAttr(key, a.Val)
			}
			switch v.Namespace {
			case "svg":
				setDefaultNamespace(el, parent, svgNamespace)
			case "math":
				setDefaultNamespace(el, parent, mathNamespace)
			}

			if isRawText(v.Tag) {
				appendRawText(el, v.Children)
			} else {
				appendXML(el, v.Children)
			}
			if len(el.Child) == 0 && !voidElements[v.Tag] {
				// force an end tag, <p/> is not read back as empty by HTML parsers
				el.CreateText("")
			}
		case *hast.Text:
			if v != nil {
				parent.CreateText(v.Value)
			}
		case *hast.Other:
			if v == nil {
				continue
			}
			switch v.Type {
			case hast.OtherComment:
				parent.CreateComment(v.Data)
			case hast.OtherDoctype:
				parent.CreateDirective("DOCTYPE " + v.Data)
			case hast.OtherRaw:
				parent.CreateCData(v.Data)
			}
		}
	}
}

func setDefaultNamespace(el, parent *etree.Element, ns string) {
	if el.SelectAttr("xmlns") != nil || parent.SelectAttrValue("xmlns", "") == ns {
		return
	}
	el.CreateAttr("xmlns", ns)
}

func isRawText(tag string) bool {
	return tag == "script" || tag == "style"
}

// appendRawText writes script and style bodies as CDATA when they would
// otherwise need escaping.
func appendRawText(el *etree.Element, children []hast.Node) {
	for _, c := range children {
		t, ok := c.(*hast.Text)
		if !ok || t == nil {
			continue
		}
		if strings.ContainsAny(t.Value, "<&") {
			el.CreateCData(t.Value)
		} else {
			el.CreateText(t.Value)
		}
	}
}
