package hast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "root", KindRoot.String())
	assert.Equal(t, "element", KindElement.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "other", KindOther.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestChildren(t *testing.T) {
	txt := NewText("a")
	p := NewElement("p", txt)

	assert.Equal(t, []Node{txt}, Children(p))
	assert.Equal(t, []Node{p}, Children(NewRoot(p)))
	assert.Nil(t, Children(txt))
	assert.Nil(t, Children(NewComment("c")))
	assert.Nil(t, Children(nil))

	var nilEl *Element
	assert.Nil(t, Children(nilEl))
}

func TestSetChildren(t *testing.T) {
	p := NewElement("p")
	assert.True(t, SetChildren(p, []Node{NewText("x")}))
	assert.Len(t, p.Children, 1)

	assert.False(t, SetChildren(NewText("x"), nil))

	var nilRoot *Root
	assert.False(t, SetChildren(nilRoot, nil))
}

func TestGetAttr(t *testing.T) {
	el := &Element{Tag: "a", Attrs: []Attr{{Key: "href", Val: "/x"}, {Namespace: "xlink", Key: "title", Val: "t"}}}

	v, ok := el.GetAttr("href")
	assert.True(t, ok)
	assert.Equal(t, "/x", v)

	_, ok = el.GetAttr("title")
	assert.False(t, ok, "namespaced attributes are not matched by bare key")
}

func TestTextContent(t *testing.T) {
	tree := NewRoot(
		NewElement("p", NewText("hello "), NewElement("em", NewText("world"))),
		NewComment("ignored"),
	)
	assert.Equal(t, "hello world", TextContent(tree))
}

func TestClone(t *testing.T) {
	orig := NewRoot(
		&Element{Tag: "p", Attrs: []Attr{{Key: "class", Val: "lead"}}, Children: []Node{
			NewText("hi"),
			NewComment("c"),
		}},
	)

	cp := Clone(orig).(*Root)
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	cp.Children[0].(*Element).Attrs[0].Val = "changed"
	cp.Children[0].(*Element).Children[0].(*Text).Value = "changed"

	p := orig.Children[0].(*Element)
	assert.Equal(t, "lead", p.Attrs[0].Val)
	assert.Equal(t, "hi", p.Children[0].(*Text).Value)
}
