package buffer

// DeleteBackward removes delta clusters before the caret on the caret line
// and moves the caret back by delta. It never joins lines.
func (b *Buffer) DeleteBackward(delta int) error {
	line, col := b.caret.Line, b.caret.Col
	start := col - delta
	if err := checkRange(IndexColumn, start, 0, col); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}

	b.lines[line] = spliceClusters(b.lines[line], start, col)
	b.caret.Col = start
	b.version++
	return nil
}

// DeleteForward removes delta clusters after the caret on the caret line.
// The caret does not move. It never joins lines.
func (b *Buffer) DeleteForward(delta int) error {
	line, col := b.caret.Line, b.caret.Col
	end := col + delta
	if err := checkRange(IndexColumn, end, col, len(b.lines[line])); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}

	b.lines[line] = spliceClusters(b.lines[line], col, end)
	b.version++
	return nil
}

// spliceClusters returns line without the half-open range [start, end).
func spliceClusters(line []string, start, end int) []string {
	out := make([]string, 0, len(line)-(end-start))
	out = append(out, line[:start]...)
	out = append(out, line[end:]...)
	return out
}
