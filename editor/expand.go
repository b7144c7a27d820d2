package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/field"
	"github.com/iw2rmb/poke/internal/grapheme"
	"github.com/iw2rmb/poke/internal/log"
)

// ExpandAbbreviation replaces the abbreviation that ends at the caret with
// its expansion. Lines after the first are indented like the caret line and
// the caret lands on the first field, or after the expansion when it has
// none. Without an abbreviation at the caret nothing happens. Expansion and
// field parse errors leave the buffer untouched.
func (e *Editor) ExpandAbbreviation() error {
	line := e.buf.CaretLine()
	abbr, ok := e.extractor.Extract(line, e.buf.Caret().Col)
	if !ok {
		log.Debug(log.CatAbbrev, "no abbreviation at caret", "caret", e.buf.Caret().String())
		return nil
	}

	cs := grapheme.Split(line)
	start := abbr.Location
	end := start + grapheme.Count(abbr.Text)
	if start < 0 || end > len(cs) {
		return &buffer.RangeError{Kind: buffer.IndexColumn, Index: end, Min: 0, Max: len(cs)}
	}
	before, after := grapheme.Join(cs[:start]), grapheme.Join(cs[end:])

	expanded, err := e.expander.Expand(abbr.Text, e.cfg.Abbrev)
	if err != nil {
		return fmt.Errorf("expand %q: %w", abbr.Text, err)
	}
	parsed, err := field.Parse(indentTail(expanded, buffer.GetIndent(before)))
	if err != nil {
		return fmt.Errorf("expand %q: %w", abbr.Text, err)
	}

	ed := edit{before: before, after: after, text: parsed.Text, offset: utf8.RuneCountInString(parsed.Text)}
	if f, ok := parsed.First(); ok {
		ed.offset = f.Location
	}
	log.Debug(log.CatAbbrev, "expanded", "abbr", abbr.Text, "fields", len(parsed.Fields))
	return e.applyEdit(ed)
}

// indentTail prefixes every line of s but the first with indent.
func indentTail(s, indent string) string {
	if indent == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}
