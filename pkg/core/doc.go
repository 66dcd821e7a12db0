// Package core wires the built-in transforms into the plugin registry and
// sets up the global configuration. Call Initialize before building a
// pipeline.
package core
