package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/poke/internal/grapheme"
)

const tabWidth = 4

// clusterWidth returns the terminal width of one grapheme cluster drawn at
// cell.
func clusterWidth(c string, cell int) int {
	if c == "\t" {
		return tabWidth - cell%tabWidth
	}
	w := runewidth.StringWidth(c)
	if w == 0 {
		w = uniseg.StringWidth(c)
	}
	return max(w, 0)
}

// cellWidth returns the width of text drawn from cell 0.
func cellWidth(text string) int {
	w := 0
	for _, c := range grapheme.Split(text) {
		w += clusterWidth(c, w)
	}
	return w
}

// colAtCell returns the grapheme column whose cell span contains cell, or
// the line length when cell is past the end.
func colAtCell(text string, cell int) int {
	w := 0
	cs := grapheme.Split(text)
	for i, c := range cs {
		next := w + clusterWidth(c, w)
		if cell < next {
			return i
		}
		w = next
	}
	return len(cs)
}

// cellRun draws clusters into cells [left, right), expanding tabs and
// blanking wide clusters that straddle an edge.
type cellRun struct {
	left, right int
	cell        int
	sb          strings.Builder
}

func (r *cellRun) add(c string) {
	w := clusterWidth(c, r.cell)
	start, end := r.cell, r.cell+w
	r.cell = end
	switch {
	case end <= r.left || start >= r.right:
	case start < r.left || end > r.right:
		r.sb.WriteString(strings.Repeat(" ", min(end, r.right)-max(start, r.left)))
	case c == "\t":
		r.sb.WriteString(strings.Repeat(" ", w))
	default:
		r.sb.WriteString(c)
	}
}

func (r *cellRun) take() string {
	s := r.sb.String()
	r.sb.Reset()
	return s
}
