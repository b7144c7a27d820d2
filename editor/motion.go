package editor

import (
	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/internal/grapheme"
)

// backwardAtSOL handles backward motion from the start of a line. It reports
// whether the caret was at SOL, in which case the column-local motion must
// be skipped.
func (e *Editor) backwardAtSOL() (bool, error) {
	if !e.buf.CaretIsAtSOL() {
		return false, nil
	}
	if e.buf.CaretIsAtFirstLine() {
		return true, nil
	}
	if err := e.buf.MoveToPrevEOL(); err != nil {
		return true, err
	}
	return true, e.renderCaretLine()
}

func (e *Editor) forwardAtEOL() (bool, error) {
	if !e.buf.CaretIsAtEOL() {
		return false, nil
	}
	if e.buf.CaretIsAtLastLine() {
		return true, nil
	}
	if err := e.buf.MoveToNextSOL(); err != nil {
		return true, err
	}
	return true, e.renderCaretLine()
}

// backwardStep is one column, or one indent unit while the caret sits in
// leading whitespace.
func (e *Editor) backwardStep(before string) int {
	unit := grapheme.Count(e.cfg.IndentUnit)
	if unit > 1 && grapheme.Count(before) >= unit && buffer.IsIndentOnly(before) {
		return unit
	}
	return 1
}

// trailingRun returns the length of the run of same-class clusters at the
// end of s: word characters if s ends with one, otherwise non-word ones.
func (e *Editor) trailingRun(s string) int {
	cs := grapheme.Split(s)
	if len(cs) == 0 {
		return 0
	}
	word := e.buf.IsWord(cs[len(cs)-1])
	n := 0
	for i := len(cs) - 1; i >= 0 && e.buf.IsWord(cs[i]) == word; i-- {
		n++
	}
	return n
}

// leadingRun is trailingRun for the start of s.
func (e *Editor) leadingRun(s string) int {
	cs := grapheme.Split(s)
	if len(cs) == 0 {
		return 0
	}
	word := e.buf.IsWord(cs[0])
	n := 0
	for n < len(cs) && e.buf.IsWord(cs[n]) == word {
		n++
	}
	return n
}

func (e *Editor) MoveBackward() error {
	if done, err := e.backwardAtSOL(); done {
		return err
	}
	before, _ := e.buf.CaretLineParts()
	if err := e.buf.MoveBackward(e.backwardStep(before)); err != nil {
		return err
	}
	return e.updateCaretLine()
}

func (e *Editor) MoveForward() error {
	if done, err := e.forwardAtEOL(); done {
		return err
	}
	if err := e.buf.MoveForward(1); err != nil {
		return err
	}
	return e.updateCaretLine()
}

// MoveBackwardWB moves to the start of the word or non-word run before the
// caret.
func (e *Editor) MoveBackwardWB() error {
	if done, err := e.backwardAtSOL(); done {
		return err
	}
	before, _ := e.buf.CaretLineParts()
	if err := e.buf.MoveBackward(e.trailingRun(before)); err != nil {
		return err
	}
	return e.updateCaretLine()
}

// MoveForwardWB moves to the end of the word or non-word run after the
// caret.
func (e *Editor) MoveForwardWB() error {
	if done, err := e.forwardAtEOL(); done {
		return err
	}
	_, after := e.buf.CaretLineParts()
	if err := e.buf.MoveForward(e.leadingRun(after)); err != nil {
		return err
	}
	return e.updateCaretLine()
}

// MoveToSOL moves to the start of the line, or to the end of the previous
// line when already there.
func (e *Editor) MoveToSOL() error {
	if done, err := e.backwardAtSOL(); done {
		return err
	}
	if err := e.buf.MoveToSOL(); err != nil {
		return err
	}
	return e.updateCaretLine()
}

// MoveToEOL moves to the end of the line, or to the start of the next line
// when already there.
func (e *Editor) MoveToEOL() error {
	if done, err := e.forwardAtEOL(); done {
		return err
	}
	if err := e.buf.MoveToEOL(); err != nil {
		return err
	}
	return e.updateCaretLine()
}

func (e *Editor) MoveToStart() error {
	if err := e.buf.MoveToStart(); err != nil {
		return err
	}
	return e.renderCaretLine()
}

func (e *Editor) MoveToEnd() error {
	if err := e.buf.MoveToEnd(); err != nil {
		return err
	}
	return e.renderCaretLine()
}
