package editor

import "github.com/iw2rmb/poke/buffer"

// Renderer receives line-granular change notifications from the editor.
//
// Indices refer to the document after the change that triggered the call.
// Exactly one line is the caret line; it is rendered split at the caret.
type Renderer interface {
	InsertLineBefore(i int) error
	InsertLineAfter(i int) error
	RemoveLine(i int) error

	// RenderLine draws line i as a plain line.
	RenderLine(i int, text string) error
	// UpdateLine refreshes the text of a plain line.
	UpdateLine(i int, text string) error

	// RenderCaretLine makes line i the caret line. The previous caret line,
	// if any, goes back to being a plain line.
	RenderCaretLine(i int, before, after string) error
	// UpdateCaretLine refreshes the caret line in place.
	UpdateCaretLine(i int, before, after string) error

	RenderFully(lines []string, caret buffer.Caret)

	ShowCaret()
	HideCaret()
}

// NopRenderer ignores every notification.
type NopRenderer struct{}

var _ Renderer = NopRenderer{}

func (NopRenderer) InsertLineBefore(int) error                { return nil }
func (NopRenderer) InsertLineAfter(int) error                 { return nil }
func (NopRenderer) RemoveLine(int) error                      { return nil }
func (NopRenderer) RenderLine(int, string) error              { return nil }
func (NopRenderer) UpdateLine(int, string) error              { return nil }
func (NopRenderer) RenderCaretLine(int, string, string) error { return nil }
func (NopRenderer) UpdateCaretLine(int, string, string) error { return nil }
func (NopRenderer) RenderFully([]string, buffer.Caret)        {}
func (NopRenderer) ShowCaret()                                {}
func (NopRenderer) HideCaret()                                {}
