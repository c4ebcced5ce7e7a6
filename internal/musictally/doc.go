// Package musictally counts music files by extension in a directory tree.
//
// It walks each top-level subfolder of the root in turn using fastwalk,
// tallies files whose suffix belongs to the fixed recognized set, and
// aggregates per-subfolder, per-extension, and total counts.
package musictally
