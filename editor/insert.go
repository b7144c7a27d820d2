package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/internal/grapheme"
	"github.com/iw2rmb/poke/internal/log"
)

var closers = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

var quotes = map[string]bool{
	"'": true,
	`"`: true,
	"`": true,
}

// Insert types text at the caret. Single brackets, quotes, a space and a
// newline get smart handling; anything else, including multi-line text, is
// inserted verbatim with the caret after it.
func (e *Editor) Insert(text string) error {
	if text == "" {
		return nil
	}
	before, after := e.buf.CaretLineParts()
	ed := newEdit(before, after, text)

	switch {
	case closers[text] != "":
		if !e.buf.StartsWithWord(after) {
			ed.text += closers[text]
		}
	case quotes[text]:
		if !e.buf.EndsWithWord(before) && !e.buf.StartsWithWord(after) {
			ed.text += text
		}
	case text == " ":
		if buffer.IsIndentOnly(before) {
			ed.text = e.cfg.IndentUnit
			ed.offset = utf8.RuneCountInString(ed.text)
		}
	case text == "\n":
		e.smartNewline(&ed)
	}

	log.Debug(log.CatEditor, "insert", "text", text, "caret", e.buf.Caret().String())
	return e.applyEdit(ed)
}

// smartNewline carries the indentation of the caret line over. Right after
// an opening bracket it indents one more level, and between an empty pair it
// also moves the closer onto its own line.
func (e *Editor) smartNewline(ed *edit) {
	indent := buffer.GetIndent(ed.before)
	prev := lastCluster(ed.before)
	next := firstCluster(ed.after)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(indent)
	if closer, ok := closers[prev]; ok {
		sb.WriteString(e.cfg.IndentUnit)
		ed.text = sb.String()
		if next == closer {
			sb.WriteString("\n")
			sb.WriteString(indent)
		}
		ed.offset = utf8.RuneCountInString(ed.text)
		ed.text = sb.String()
		return
	}
	ed.text = sb.String()
	ed.offset = utf8.RuneCountInString(ed.text)
}

func lastCluster(s string) string {
	cs := grapheme.Split(s)
	if len(cs) == 0 {
		return ""
	}
	return cs[len(cs)-1]
}

func firstCluster(s string) string {
	cs := grapheme.Split(s)
	if len(cs) == 0 {
		return ""
	}
	return cs[0]
}
