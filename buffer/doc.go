// Package buffer implements the line-oriented text model behind the editor:
// an ordered, never-empty list of lines plus a single caret.
//
// Coordinates are 0-based (Line, Col). Columns count grapheme clusters, so a
// caret never lands inside a combined character. Every index-based operation
// validates its arguments and returns a *RangeError instead of clamping.
package buffer
