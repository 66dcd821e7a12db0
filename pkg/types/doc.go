// Package types holds the contracts shared between the render pipeline and
// the transforms plugged into it.
package types
