package buffer

import (
	"strings"

	"github.com/iw2rmb/poke/internal/grapheme"
)

// CaretInText locates runeOffset inside text that is about to be inserted
// after before. lineDelta counts the newlines ahead of the offset. When the
// offset stays on the first line, col is the cluster count of before joined
// with the text up to the offset, so marks that extend the last cluster of
// before do not add a column; otherwise col counts the clusters between the
// last newline and the offset. Offsets past the end of text are treated as
// len(text).
func CaretInText(before, text string, runeOffset int) (lineDelta, col int) {
	prefix := text
	n := 0
	for i := range text {
		if n == max(runeOffset, 0) {
			prefix = text[:i]
			break
		}
		n++
	}

	lineDelta = strings.Count(prefix, "\n")
	if lineDelta == 0 {
		return 0, grapheme.Count(before + prefix)
	}
	return lineDelta, grapheme.Count(prefix[strings.LastIndexByte(prefix, '\n')+1:])
}
