package buffer

import (
	"unicode"

	"github.com/iw2rmb/poke/internal/grapheme"
)

// IsIndentOnly reports whether s is empty or consists only of whitespace.
func IsIndentOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// GetIndent returns the leading whitespace run of s, or "".
func GetIndent(s string) string {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return s[:i]
		}
	}
	return s
}

// IsWord reports whether cluster is a word character under the buffer's
// word class.
func (b *Buffer) IsWord(cluster string) bool {
	return b.isWord(cluster)
}

// EndsWithWord reports whether the last character of s is a word character.
func (b *Buffer) EndsWithWord(s string) bool {
	cs := grapheme.Split(s)
	return len(cs) > 0 && b.isWord(cs[len(cs)-1])
}

// StartsWithWord reports whether the first character of s is a word
// character.
func (b *Buffer) StartsWithWord(s string) bool {
	cs := grapheme.Split(s)
	return len(cs) > 0 && b.isWord(cs[0])
}

func (b *Buffer) IsIndentOnly(s string) bool { return IsIndentOnly(s) }

func (b *Buffer) GetIndent(s string) string { return GetIndent(s) }
