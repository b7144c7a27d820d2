// Package grapheme splits text into user-perceived characters and classifies
// them for caret motion.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Class selects how clusters are classified as word characters.
type Class uint8

const (
	// ClassASCII treats only [A-Za-z0-9_] as word characters.
	ClassASCII Class = iota
	// ClassUnicode also accepts non-ASCII letters, digits and combining marks.
	ClassUnicode
)

var wordFuncs = map[Class]func(cluster string) bool{
	ClassASCII:   isWordASCII,
	ClassUnicode: isWordUnicode,
}

// WordFunc returns the word classifier for c. Unknown classes fall back to
// ClassASCII.
func WordFunc(c Class) func(cluster string) bool {
	if fn, ok := wordFuncs[c]; ok {
		return fn
	}
	return isWordASCII
}

// IsWord reports whether cluster is a word character under c.
func IsWord(c Class, cluster string) bool {
	return WordFunc(c)(cluster)
}

func (c Class) String() string {
	switch c {
	case ClassASCII:
		return "ascii"
	case ClassUnicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// ParseClass maps a config name to a Class.
func ParseClass(name string) (Class, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii":
		return ClassASCII, true
	case "unicode":
		return ClassUnicode, true
	default:
		return ClassASCII, false
	}
}

func isWordASCII(cluster string) bool {
	if len(cluster) != 1 {
		return false
	}
	c := cluster[0]
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// A cluster is a Unicode word character when its base rune is a letter,
// digit or underscore. Trailing runes are combining marks or joiners.
func isWordUnicode(cluster string) bool {
	for _, r := range cluster {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}
