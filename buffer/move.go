package buffer

// MoveCaret sets the caret. Both indices are checked against the current
// document; nothing is clamped.
func (b *Buffer) MoveCaret(line, col int) error {
	if err := b.checkLine(line); err != nil {
		return err
	}
	if err := b.checkColumn(line, col); err != nil {
		return err
	}
	next := Caret{Line: line, Col: col}
	if next == b.caret {
		return nil
	}
	b.caret = next
	b.version++
	return nil
}

// MoveBackward moves the caret delta columns left on the caret line.
// Crossing to the previous line is the caller's job (see CaretIsAtSOL).
func (b *Buffer) MoveBackward(delta int) error {
	return b.MoveCaret(b.caret.Line, b.caret.Col-delta)
}

// MoveForward moves the caret delta columns right on the caret line.
// Crossing to the next line is the caller's job (see CaretIsAtEOL).
func (b *Buffer) MoveForward(delta int) error {
	return b.MoveCaret(b.caret.Line, b.caret.Col+delta)
}

func (b *Buffer) MoveToSOL() error {
	return b.MoveCaret(b.caret.Line, 0)
}

func (b *Buffer) MoveToEOL() error {
	return b.MoveCaret(b.caret.Line, len(b.lines[b.caret.Line]))
}

// MoveToPrevEOL moves the caret to the end of the previous line. It fails on
// the first line.
func (b *Buffer) MoveToPrevEOL() error {
	prev := b.caret.Line - 1
	if err := b.checkLine(prev); err != nil {
		return err
	}
	return b.MoveCaret(prev, len(b.lines[prev]))
}

// MoveToNextSOL moves the caret to the start of the next line. It fails on
// the last line.
func (b *Buffer) MoveToNextSOL() error {
	return b.MoveCaret(b.caret.Line+1, 0)
}

func (b *Buffer) MoveToStart() error {
	return b.MoveCaret(0, 0)
}

func (b *Buffer) MoveToEnd() error {
	last := len(b.lines) - 1
	return b.MoveCaret(last, len(b.lines[last]))
}

func (b *Buffer) CaretIsAtFirstLine() bool { return b.caret.Line == 0 }

func (b *Buffer) CaretIsAtLastLine() bool { return b.caret.Line == len(b.lines)-1 }

func (b *Buffer) CaretIsAtSOL() bool { return b.caret.Col == 0 }

func (b *Buffer) CaretIsAtEOL() bool { return b.caret.Col == len(b.lines[b.caret.Line]) }

func (b *Buffer) CaretIsAtStart() bool { return b.CaretIsAtFirstLine() && b.CaretIsAtSOL() }

func (b *Buffer) CaretIsAtEnd() bool { return b.CaretIsAtLastLine() && b.CaretIsAtEOL() }
