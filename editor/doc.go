// Package editor implements the editing policy on top of the buffer package:
// line-join handling at SOL/EOL, word-boundary motion and deletion, smart
// pairing and indentation on insert, abbreviation expansion and script
// evaluation.
//
// The editor never draws anything. It reports line-granular changes to a
// Renderer so a host can update its screen incrementally. Hosts drive it by
// command name (see Command) or through the typed methods.
package editor
