// Package buffer implements the document model behind the amend editor.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open: [Start, End). Every text mutation is one
// transaction that bumps the version, records one undo entry, and produces
// one Change describing the edits that were actually applied.
package buffer
