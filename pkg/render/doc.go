// Package render serializes document trees as HTML or XHTML and sanitizes
// rendered markup.
package render
