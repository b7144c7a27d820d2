package tui

import "fmt"

// LineNumberWidth returns the line-number gutter width for lineCount,
// including the separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(m.view.LineCount())
}

func (m Model) renderGutter(row, digits int, caretRow bool) string {
	style := m.cfg.Style.LineNum
	if m.focused && caretRow {
		style = m.cfg.Style.LineNumActive
	}
	return style.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
