// Package pipeline turns markdown or HTML sources into rendered documents.
//
// A Pipeline runs these stages in order:
//
//   - front matter: a leading YAML block of markdown sources becomes Document.Meta
//   - markdown: goldmark converts markdown sources to HTML
//   - parse: the HTML is parsed into a hast tree
//   - transform: registered transforms run in configured order
//   - sanitize: optional bluemonday pass over the body
//   - render: the tree is written as HTML or XHTML
//
// Transforms are looked up in the global plugin registry, so the packages
// providing them must be imported (see pkg/core).
package pipeline
