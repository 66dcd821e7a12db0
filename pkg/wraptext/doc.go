// Package wraptext wraps bare text runs of block-level elements in inline
// <span> elements, so that styling and scripting can address each run.
//
// A block (p, li, h1-h6, td, th, blockquote, figcaption) has its direct
// children rewritten only when it holds genuinely mixed inline content:
// more than one child, at least one non-blank text child and at least one
// element child other than <br>. Every non-blank text child of such a block
// is then replaced, in place, by a span whose only child is that same text
// node. All other children keep their position.
//
// The pass is total: it never fails and leaves anything it does not
// recognise untouched.
package wraptext
