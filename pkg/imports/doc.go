// Package imports classifies and sorts JavaScript import and re-export
// statements into ordered buckets.
//
// # Groups
//
// Groups is an ordered list of buckets, each an ordered list of regular
// expressions matched against the module specifier. A statement lands in the
// first bucket with a matching pattern; statements matching nothing land in
// the implicit catch-all bucket after the last one. Side-effect imports are
// also tried with a NUL byte prefixed to the specifier, so a `^\u0000`
// bucket collects them.
//
// Within a bucket statements are ordered by specifier, then by input
// position. Blocks are emitted in bucket order with a blank line between
// them.
//
// # Sources
//
// Extract and SortSource work on whole files: the leading run of imports and
// re-exports is sorted in place, comments directly above a statement travel
// with it, and everything after the header is left untouched.
//
//	out, advisories := imports.SortSource(src, imports.DefaultGroups())
package imports
