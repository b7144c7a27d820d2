package abbrev

import (
	"github.com/iw2rmb/poke/internal/grapheme"
)

// Abbreviation is an abbreviation found on a line. Location is the grapheme
// column where Text starts.
type Abbreviation struct {
	Text     string
	Location int
}

// Extractor locates the abbreviation that ends at (or just past) the caret.
type Extractor struct {
	// LookAhead skips a quote and auto-closed brackets right after the caret,
	// so "a[title=|]" extracts "a[title=]".
	LookAhead bool
}

// Extract runs the default extractor (look-ahead on).
func Extract(line string, col int) (Abbreviation, bool) {
	return Extractor{LookAhead: true}.Extract(line, col)
}

// Extract scans backward from col over abbreviation characters and balanced
// (), [] and {} groups. Inside a group any character is accepted. It reports
// false when nothing usable precedes the caret or a group is unbalanced.
func (x Extractor) Extract(line string, col int) (Abbreviation, bool) {
	clusters := grapheme.Split(line)
	if col < 0 || col > len(clusters) {
		return Abbreviation{}, false
	}

	end := col
	if x.LookAhead {
		end = pastAutoClosed(clusters, end)
	}

	start := end
	var stack []string
	for start > 0 {
		c := clusters[start-1]
		if _, ok := closers[c]; ok {
			stack = append(stack, c)
			start--
			continue
		}
		if closer, ok := openers[c]; ok {
			if len(stack) == 0 || stack[len(stack)-1] != closer {
				break
			}
			stack = stack[:len(stack)-1]
			start--
			continue
		}
		if len(stack) > 0 || isAbbrChar(c) {
			start--
			continue
		}
		break
	}
	if len(stack) > 0 {
		return Abbreviation{}, false
	}

	// Operators cannot start an abbreviation.
	for start < end && isOperator(clusters[start]) {
		start++
	}
	if start == end {
		return Abbreviation{}, false
	}
	return Abbreviation{Text: grapheme.Join(clusters[start:end]), Location: start}, true
}

func pastAutoClosed(clusters []string, pos int) int {
	if pos < len(clusters) && (clusters[pos] == `"` || clusters[pos] == `'`) {
		pos++
	}
	for pos < len(clusters) {
		if _, ok := closers[clusters[pos]]; !ok {
			break
		}
		pos++
	}
	return pos
}

var (
	openers = map[string]string{"(": ")", "[": "]", "{": "}"}
	closers = map[string]string{")": "(", "]": "[", "}": "{"}
)

func isAbbrChar(c string) bool {
	if len(c) != 1 {
		return false
	}
	b := c[0]
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '_', '-', '.', '#', '>', '+', '^', '*', '$', ':', '@', '!', '/':
		return true
	}
	return false
}

func isOperator(c string) bool {
	return c == ">" || c == "+" || c == "^" || c == "*"
}
