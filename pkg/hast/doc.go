// Package hast provides a small HTML abstract syntax tree used by the
// spanwrap render pipeline.
//
// A tree is made of four node kinds: the document Root, Element, Text and
// Other (comments, doctypes and raw nodes that transforms pass through
// untouched). Node is a sealed interface, so a type switch over
// *Root, *Element, *Text and *Other is exhaustive.
//
// Trees are converted from and to golang.org/x/net/html node trees with
// FromHTML and ToHTML; ParseHTML and RenderHTML wrap the parser and renderer.
package hast
