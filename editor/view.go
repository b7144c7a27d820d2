package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/internal/grapheme"
)

// ErrRenderState is wrapped by every error a View returns when the
// notifications it receives disagree with what it has rendered.
var ErrRenderState = errors.New("render state out of sync")

// View is a Renderer that mirrors the rendered document in memory. Hosts
// can embed it and draw from its state; tests use it to check that the
// editor keeps the rendering in sync with the buffer.
//
// The zero value is an empty view with no caret line and a visible caret.
type View struct {
	lines []string

	hasCaret    bool
	caretLine   int
	caretBefore string
	caretAfter  string
	caretHidden bool
}

var _ Renderer = (*View)(nil)

func NewView() *View { return &View{} }

// Lines returns a copy of the rendered lines. The caret line is included
// joined.
func (v *View) Lines() []string {
	out := make([]string, len(v.lines))
	copy(out, v.lines)
	return out
}

func (v *View) LineCount() int { return len(v.lines) }

// CaretLine returns the index of the rendered caret line, or -1.
func (v *View) CaretLine() int {
	if !v.hasCaret {
		return -1
	}
	return v.caretLine
}

// CaretParts returns the caret line split at the caret.
func (v *View) CaretParts() (before, after string) {
	return v.caretBefore, v.caretAfter
}

func (v *View) CaretVisible() bool { return !v.caretHidden }

func (v *View) InsertLineBefore(i int) error {
	if i < 0 || i > len(v.lines) {
		return v.errorf("Cannot insert line before index %d of %d", i, len(v.lines))
	}
	v.insert(i)
	return nil
}

func (v *View) InsertLineAfter(i int) error {
	if i < -1 || i >= len(v.lines) {
		return v.errorf("Cannot insert line after index %d of %d", i, len(v.lines))
	}
	v.insert(i + 1)
	return nil
}

func (v *View) insert(at int) {
	v.lines = append(v.lines, "")
	copy(v.lines[at+1:], v.lines[at:])
	v.lines[at] = ""
	if v.hasCaret && v.caretLine >= at {
		v.caretLine++
	}
}

func (v *View) RemoveLine(i int) error {
	if err := v.checkLine(i); err != nil {
		return err
	}
	v.lines = append(v.lines[:i], v.lines[i+1:]...)
	switch {
	case !v.hasCaret:
	case v.caretLine == i:
		v.hasCaret = false
	case v.caretLine > i:
		v.caretLine--
	}
	return nil
}

func (v *View) RenderLine(i int, text string) error {
	if err := v.checkLine(i); err != nil {
		return err
	}
	v.lines[i] = text
	if v.hasCaret && v.caretLine == i {
		v.hasCaret = false
	}
	return nil
}

func (v *View) UpdateLine(i int, text string) error {
	if err := v.checkLine(i); err != nil {
		return err
	}
	if v.hasCaret && i == v.caretLine {
		return v.errorf("Attempting to update rendered caret line at index %d like regular line", i)
	}
	v.lines[i] = text
	return nil
}

func (v *View) RenderCaretLine(i int, before, after string) error {
	if err := v.checkLine(i); err != nil {
		return err
	}
	v.setCaretLine(i, before, after)
	return nil
}

func (v *View) UpdateCaretLine(i int, before, after string) error {
	if !v.hasCaret || i != v.caretLine {
		return v.errorf("Attempting to update rendered regular line at index %d like caret line (at index %d)", i, v.CaretLine())
	}
	v.setCaretLine(i, before, after)
	return nil
}

func (v *View) setCaretLine(i int, before, after string) {
	v.lines[i] = before + after
	v.hasCaret = true
	v.caretLine = i
	v.caretBefore, v.caretAfter = before, after
}

func (v *View) RenderFully(lines []string, caret buffer.Caret) {
	v.lines = append(v.lines[:0], lines...)
	v.hasCaret = false
	if caret.Line < 0 || caret.Line >= len(v.lines) {
		return
	}
	cs := grapheme.Split(v.lines[caret.Line])
	col := min(max(caret.Col, 0), len(cs))
	v.setCaretLine(caret.Line, grapheme.Join(cs[:col]), grapheme.Join(cs[col:]))
}

func (v *View) ShowCaret() { v.caretHidden = false }

func (v *View) HideCaret() { v.caretHidden = true }

func (v *View) checkLine(i int) error {
	if i < 0 || i >= len(v.lines) {
		return v.errorf("Line index %d out of rendered range [0, %d]", i, len(v.lines)-1)
	}
	return nil
}

func (v *View) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRenderState, fmt.Sprintf(format, args...))
}
