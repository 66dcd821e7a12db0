// Package transforms holds the built-in tree transforms and registers them
// with the global plugin registry on import.
//
// Importing this package for its side effects is enough to make
// "wrap-text-runs" and "strip-comments" available to the pipeline.
package transforms
