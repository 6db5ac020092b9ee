// Package utils provides small project-wide helpers: directory creation,
// JSON read/write, run timestamps and seeded random generators.
//
// Nothing in here keeps state. In particular the random helpers hand out
// generator instances owned by the caller instead of touching the
// process-wide source, so independent callers never interfere.
package utils
