package editor

// joinCaretLineWithNext appends the next line to the caret line and removes
// it.
func (e *Editor) joinCaretLineWithNext() error {
	next := e.buf.Caret().Line + 1
	text, err := e.buf.Line(next)
	if err != nil {
		return err
	}
	if err := e.buf.UpdateCaretLine(e.buf.CaretLine() + text); err != nil {
		return err
	}
	if err := e.buf.RemoveLine(next); err != nil {
		return err
	}
	if err := e.r.RemoveLine(next); err != nil {
		return err
	}
	return e.renderCaretLine()
}

func (e *Editor) deleteBackwardAtSOL() (bool, error) {
	if !e.buf.CaretIsAtSOL() {
		return false, nil
	}
	if e.buf.CaretIsAtFirstLine() {
		return true, nil
	}
	if err := e.buf.MoveToPrevEOL(); err != nil {
		return true, err
	}
	return true, e.joinCaretLineWithNext()
}

func (e *Editor) deleteForwardAtEOL() (bool, error) {
	if !e.buf.CaretIsAtEOL() {
		return false, nil
	}
	if e.buf.CaretIsAtLastLine() {
		return true, nil
	}
	return true, e.joinCaretLineWithNext()
}

// DeleteBackward deletes one character, or one indent unit of leading
// whitespace. At SOL it joins the line onto the previous one.
func (e *Editor) DeleteBackward() error {
	if done, err := e.deleteBackwardAtSOL(); done {
		return err
	}
	before, _ := e.buf.CaretLineParts()
	if err := e.buf.DeleteBackward(e.backwardStep(before)); err != nil {
		return err
	}
	return e.updateCaretLine()
}

// DeleteForward deletes one character. At EOL it joins the next line onto
// this one.
func (e *Editor) DeleteForward() error {
	if done, err := e.deleteForwardAtEOL(); done {
		return err
	}
	if err := e.buf.DeleteForward(1); err != nil {
		return err
	}
	return e.updateCaretLine()
}

func (e *Editor) DeleteBackwardWB() error {
	if done, err := e.deleteBackwardAtSOL(); done {
		return err
	}
	before, _ := e.buf.CaretLineParts()
	if err := e.buf.DeleteBackward(e.trailingRun(before)); err != nil {
		return err
	}
	return e.updateCaretLine()
}

func (e *Editor) DeleteForwardWB() error {
	if done, err := e.deleteForwardAtEOL(); done {
		return err
	}
	_, after := e.buf.CaretLineParts()
	if err := e.buf.DeleteForward(e.leadingRun(after)); err != nil {
		return err
	}
	return e.updateCaretLine()
}
