package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/internal/grapheme"
)

// edit replaces the caret line with before+text+after and lands the caret
// at offset runes into text.
type edit struct {
	before string
	after  string
	text   string
	offset int
}

func newEdit(before, after, text string) edit {
	return edit{before: before, after: after, text: text, offset: utf8.RuneCountInString(text)}
}

// applyEdit writes e to the buffer. Each line of text after the first
// becomes a new line below the caret line; after is appended to the last
// one. The renderer gets one insert and one render per new line.
func (e *Editor) applyEdit(ed edit) error {
	line := e.buf.Caret().Line
	segs := strings.Split(ed.text, "\n")
	first, rest := ed.before+segs[0], segs[1:]
	if len(rest) == 0 {
		first += ed.after
	} else {
		rest[len(rest)-1] += ed.after
	}

	// Inserted marks may merge with clusters on either side, so the column
	// is bounded by the target line as it will be written.
	lineDelta, col := buffer.CaretInText(ed.before, ed.text, ed.offset)
	target := first
	if lineDelta > 0 {
		target = rest[lineDelta-1]
	}
	col = min(col, grapheme.Count(target))

	if err := e.buf.UpdateCaretLine(first); err != nil {
		return err
	}
	if len(rest) == 0 {
		if err := e.buf.MoveCaret(line, col); err != nil {
			return err
		}
		return e.updateCaretLine()
	}

	if err := e.r.RenderLine(line, first); err != nil {
		return err
	}
	for i, text := range rest {
		if err := e.buf.InsertLineAfter(line+i, text); err != nil {
			return err
		}
		if err := e.r.InsertLineAfter(line + i); err != nil {
			return err
		}
		if err := e.r.RenderLine(line+i+1, text); err != nil {
			return err
		}
	}
	if err := e.buf.MoveCaret(line+lineDelta, col); err != nil {
		return err
	}
	return e.renderCaretLine()
}
