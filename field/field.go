package field

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field is one tab stop found in a string.
type Field struct {
	Index       int
	Placeholder string
	Location    int
}

// Length is the rune length of the placeholder.
func (f Field) Length() int { return utf8.RuneCountInString(f.Placeholder) }

// String is a field-free string plus the fields that were removed from it.
type String struct {
	Text   string
	Fields []Field
}

func (s String) String() string { return s.Text }

// Mark re-inserts field tokens into s.Text.
func (s String) Mark(token TokenFunc) string {
	return Mark(s.Text, s.Fields, token)
}

// First returns the lowest-location field, if any. Fields sharing a location
// keep their encounter order.
func (s String) First() (Field, bool) {
	if len(s.Fields) == 0 {
		return Field{}, false
	}
	first := s.Fields[0]
	for _, f := range s.Fields[1:] {
		if f.Location < first.Location {
			first = f
		}
	}
	return first, true
}

// TokenFunc renders a field token for index and placeholder.
type TokenFunc func(index int, placeholder string) string

// CreateToken renders ${index:placeholder}, or ${index} when placeholder is
// empty.
func CreateToken(index int, placeholder string) string {
	if placeholder != "" {
		return "${" + strconv.Itoa(index) + ":" + placeholder + "}"
	}
	return "${" + strconv.Itoa(index) + "}"
}

// ErrUnmatchedBrace is wrapped by every *ParseError.
var ErrUnmatchedBrace = errors.New("no matching closing brace")

// ParseError reports an unterminated field or placeholder.
type ParseError struct {
	Pos   int // rune offset of the offending '{'
	Msg   string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at char %d", e.Msg, e.Pos+1)
}

func (e *ParseError) Unwrap() error { return ErrUnmatchedBrace }

// Mark wraps each field range in text with a token produced by token
// (CreateToken when nil). Fields are emitted in order of their end offset,
// then start offset; exact ties keep the order they have in fields.
// Field ranges must not overlap.
func Mark(text string, fields []Field, token TokenFunc) string {
	if token == nil {
		token = CreateToken
	}

	type item struct {
		field Field
		end   int
	}
	ordered := make([]item, len(fields))
	for i, f := range fields {
		ordered[i] = item{field: f, end: f.Location + f.Length()}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].end != ordered[j].end {
			return ordered[i].end < ordered[j].end
		}
		return ordered[i].field.Location < ordered[j].field.Location
	})

	rs := []rune(text)
	var sb strings.Builder
	offset := 0
	for _, it := range ordered {
		loc := clamp(it.field.Location, offset, len(rs))
		end := clamp(it.end, loc, len(rs))
		sb.WriteString(string(rs[offset:loc]))
		sb.WriteString(token(it.field.Index, string(rs[loc:end])))
		offset = end
	}
	sb.WriteString(string(rs[offset:]))
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
