// Package registry provides a generic, type-safe registry and the global
// registry of transform plugins. Plugins register themselves from init()
// functions.
package registry
