package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	reflowtruncate "github.com/muesli/reflow/truncate"

	"github.com/iw2rmb/poke/internal/grapheme"
	"github.com/iw2rmb/poke/keyboard"
)

const maxKeyWidth = 6

func (m Model) View() string {
	parts := []string{m.viewport.View()}
	if kb := m.renderKeyboard(); kb != "" {
		parts = append(parts, kb)
	}
	parts = append(parts, m.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderContent() string {
	lines := m.view.Lines()
	caretRow := m.view.CaretLine()
	digits := gutterDigits(len(lines))

	left, right := m.xOffset, math.MaxInt
	if w := m.contentWidth(); m.viewport.Width > 0 && w > 0 {
		right = left + w
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, digits, row == caretRow))
		}
		caretCol := -1
		if row == caretRow {
			before, _ := m.view.CaretParts()
			caretCol = grapheme.Count(before)
		}
		sb.WriteString(m.renderRow(line, caretCol, left, right))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderRow draws the cells [left, right) of line. caretCol is the caret's
// grapheme column, or -1 on other rows.
func (m Model) renderRow(line string, caretCol, left, right int) string {
	st := m.cfg.Style
	showCaret := caretCol >= 0 && m.focused && m.view.CaretVisible()
	run := cellRun{left: left, right: right}

	var sb strings.Builder
	cs := grapheme.Split(line)
	for i, c := range cs {
		if showCaret && i == caretCol {
			sb.WriteString(st.Text.Render(run.take()))
			run.add(c)
			sb.WriteString(st.Cursor.Render(run.take()))
			continue
		}
		run.add(c)
	}
	sb.WriteString(st.Text.Render(run.take()))
	if showCaret && caretCol >= len(cs) {
		run.add(" ")
		if s := run.take(); s != "" {
			sb.WriteString(st.Cursor.Render(s))
		}
	}
	return sb.String()
}

func (m Model) renderKeyboard() string {
	if m.kb.Hidden() {
		return ""
	}
	rows := m.kb.Rows()
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			out = append(out, "")
			continue
		}
		w := m.keyWidth(len(row))
		var sb strings.Builder
		for _, k := range row {
			style := m.cfg.Style.Key
			if m.hasArmed && sameKey(k, m.armed) {
				style = m.cfg.Style.KeyArmed
			}
			sb.WriteString(style.Render(keyCell(k, w)))
		}
		line := sb.String()
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// keyWidth is the cell width of each key in a row of n keys.
func (m Model) keyWidth(n int) int {
	if m.width <= 0 || n == 0 {
		return maxKeyWidth
	}
	return min(max(m.width/n, 1), maxKeyWidth)
}

// keyAt returns the visible key drawn at screen cell (x, y).
func (m Model) keyAt(x, y int) (keyboard.Key, bool) {
	if m.kb.Hidden() || x < 0 {
		return keyboard.Key{}, false
	}
	rows := m.kb.Rows()
	r := y - m.viewport.Height
	if r < 0 || r >= len(rows) {
		return keyboard.Key{}, false
	}
	row := rows[r]
	i := x / m.keyWidth(len(row))
	if i >= len(row) {
		return keyboard.Key{}, false
	}
	return row[i], true
}

// keyCell centres the key's tap label in w cells.
func keyCell(k keyboard.Key, w int) string {
	label := runewidth.Truncate(k.Label(), max(w-1, 1), "")
	pad := w - runewidth.StringWidth(label)
	return strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2)
}

func sameKey(a, b keyboard.Key) bool {
	return a.Role == b.Role && a.Text == b.Text && a.Command == b.Command && a.Hint == b.Hint
}

func (m Model) renderStatus() string {
	st := m.cfg.Style
	var s string
	switch {
	case m.hasArmed:
		return st.Status.Render(armedHints(m.armed))
	case m.out.text != "":
		s = strings.Join(strings.Fields(m.out.text), " ")
		if m.out.isErr {
			return st.Error.Render(truncate(s, m.width))
		}
		return st.Status.Render(truncate(s, m.width))
	default:
		return m.help.View(m.cfg.KeyMap)
	}
}

// armedHints lists the armed key's slots in hint grid order.
func armedHints(k keyboard.Key) string {
	var parts []string
	for _, row := range k.Hints.Grid() {
		for _, d := range row {
			if d == keyboard.NoDirection {
				continue
			}
			if h := k.HintAt(d); h != "" {
				parts = append(parts, d.String()+":"+h)
			}
		}
	}
	if len(parts) == 0 {
		return "key has no actions"
	}
	return "swipe " + strings.Join(parts, " ")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return reflowtruncate.StringWithTail(s, uint(width), "…")
}
