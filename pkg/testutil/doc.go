// Package testutil provides helpers shared by spanwrap tests.
//
// Key components:
//   - Tree builders (P, El, T, Br, ...) for writing hast fixtures inline
//   - AssertTreeEqual, a go-cmp based structural tree assertion
//   - Filesystem helpers backed by t.TempDir
//
// All test data should be defined inline, not in external files.
package testutil
