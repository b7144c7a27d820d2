package buffer

import (
	"strings"

	"github.com/iw2rmb/poke/internal/grapheme"
)

// WordClass selects which grapheme clusters count as word characters.
type WordClass = grapheme.Class

const (
	WordASCII   WordClass = grapheme.ClassASCII   // [A-Za-z0-9_]
	WordUnicode WordClass = grapheme.ClassUnicode // any letter, digit or underscore
)

type Options struct {
	// WordClass selects the word-character classifier used by EndsWithWord
	// and StartsWithWord. Default: WordASCII.
	WordClass WordClass
}

// Buffer is the authoritative document state: lines and the caret.
type Buffer struct {
	lines   [][]string
	version uint64

	caret Caret

	opt    Options
	isWord func(cluster string) bool
}

func New(text string, opt Options) *Buffer {
	return &Buffer{
		lines:  splitLines(text),
		caret:  Caret{},
		opt:    opt,
		isWord: grapheme.WordFunc(opt.WordClass),
	}
}

// Content joins all lines with '\n'.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// SetContent replaces the whole document and resets the caret to (0,0).
func (b *Buffer) SetContent(text string) {
	b.lines = splitLines(text)
	b.caret = Caret{}
	b.version++
}

// Version increments on every effective mutation of text or caret.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Options() Options { return b.opt }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

func (b *Buffer) Line(i int) (string, error) {
	if err := b.checkLine(i); err != nil {
		return "", err
	}
	return grapheme.Join(b.lines[i]), nil
}

// LineLen returns the length of line i in grapheme clusters.
func (b *Buffer) LineLen(i int) (int, error) {
	if err := b.checkLine(i); err != nil {
		return 0, err
	}
	return len(b.lines[i]), nil
}

// LineParts splits line i at col into the text before and from col.
func (b *Buffer) LineParts(i, col int) (before, after string, err error) {
	if err := b.checkLine(i); err != nil {
		return "", "", err
	}
	if err := b.checkColumn(i, col); err != nil {
		return "", "", err
	}
	line := b.lines[i]
	return grapheme.Join(line[:col]), grapheme.Join(line[col:]), nil
}

// InsertLineBefore splices text in at index i. i == LineCount appends.
func (b *Buffer) InsertLineBefore(i int, text string) error {
	if err := checkRange(IndexLine, i, 0, len(b.lines)); err != nil {
		return err
	}
	return b.insertLine(i, text)
}

// InsertLineAfter splices text in after index i. i == -1 prepends.
func (b *Buffer) InsertLineAfter(i int, text string) error {
	if err := checkRange(IndexLine, i, -1, len(b.lines)-1); err != nil {
		return err
	}
	return b.insertLine(i+1, text)
}

// RemoveLine deletes line i. Removing the only line leaves a single empty
// line. The caret stays on the text it was on; if that text is gone it moves
// to the nearest valid position.
func (b *Buffer) RemoveLine(i int) error {
	if err := b.checkLine(i); err != nil {
		return err
	}

	if len(b.lines) == 1 {
		b.lines[0] = nil
	} else {
		out := make([][]string, 0, len(b.lines)-1)
		out = append(out, b.lines[:i]...)
		out = append(out, b.lines[i+1:]...)
		b.lines = out
		if i < b.caret.Line {
			b.caret.Line--
		}
	}
	b.keepCaretValid()
	b.version++
	return nil
}

// UpdateLine replaces the text of line i.
func (b *Buffer) UpdateLine(i int, text string) error {
	if err := b.checkLine(i); err != nil {
		return err
	}
	if strings.Contains(text, "\n") {
		return ErrNewlineInLine
	}
	b.lines[i] = grapheme.Split(text)
	b.keepCaretValid()
	b.version++
	return nil
}

func (b *Buffer) Caret() Caret { return b.caret }

func (b *Buffer) CaretLine() string {
	return grapheme.Join(b.lines[b.caret.Line])
}

// CaretLineParts returns the caret line split at the caret.
func (b *Buffer) CaretLineParts() (before, after string) {
	line := b.lines[b.caret.Line]
	return grapheme.Join(line[:b.caret.Col]), grapheme.Join(line[b.caret.Col:])
}

func (b *Buffer) UpdateCaretLine(text string) error {
	return b.UpdateLine(b.caret.Line, text)
}

func (b *Buffer) InsertLineAfterCaretLine(text string) error {
	return b.InsertLineAfter(b.caret.Line, text)
}

func (b *Buffer) insertLine(at int, text string) error {
	if strings.Contains(text, "\n") {
		return ErrNewlineInLine
	}
	out := make([][]string, 0, len(b.lines)+1)
	out = append(out, b.lines[:at]...)
	out = append(out, grapheme.Split(text))
	out = append(out, b.lines[at:]...)
	b.lines = out
	if at <= b.caret.Line {
		b.caret.Line++
	}
	b.version++
	return nil
}

// keepCaretValid restores the caret invariant after a structural change.
// Caller-supplied indices are never clamped; this only repairs the caret.
func (b *Buffer) keepCaretValid() {
	if b.caret.Line > len(b.lines)-1 {
		b.caret.Line = len(b.lines) - 1
	}
	if n := len(b.lines[b.caret.Line]); b.caret.Col > n {
		b.caret.Col = n
	}
}

func (b *Buffer) checkLine(i int) error {
	return checkRange(IndexLine, i, 0, len(b.lines)-1)
}

func (b *Buffer) checkColumn(i, col int) error {
	return checkRange(IndexColumn, col, 0, len(b.lines[i]))
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
