package field

import (
	"strconv"
	"strings"
)

const (
	dollar     = '$'
	colon      = ':'
	escape     = '\\'
	openBrace  = '{'
	closeBrace = '}'
)

// Parse strips field tokens from s and returns the cleaned text with the
// fields found, in encounter order. A backslash and the character after it
// are copied through and never start a field.
func Parse(s string) (String, error) {
	st := &stream{src: []rune(s), input: s}

	var (
		clean    strings.Builder
		cleanLen int
		fields   []Field
		offset   int
	)
	for !st.eof() {
		pos := st.pos
		if st.peek() == escape {
			st.pos += 2
			continue
		}

		f, ok, err := consumeField(st, cleanLen+pos-offset)
		if err != nil {
			return String{}, err
		}
		if !ok {
			st.pos++
			continue
		}

		lit := st.src[offset:pos]
		clean.WriteString(string(lit))
		clean.WriteString(f.Placeholder)
		cleanLen += len(lit) + f.Length()
		fields = append(fields, f)
		offset = st.pos
	}
	if offset < len(st.src) {
		clean.WriteString(string(st.src[offset:]))
	}
	return String{Text: clean.String(), Fields: fields}, nil
}

type stream struct {
	src   []rune
	pos   int
	input string
}

func (s *stream) eof() bool { return s.pos >= len(s.src) }

func (s *stream) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *stream) eat(r rune) bool {
	if !s.eof() && s.src[s.pos] == r {
		s.pos++
		return true
	}
	return false
}

// consumeField reads $N, ${N} or ${N:placeholder} at the stream position.
// On a miss the stream is rewound and ok is false.
func consumeField(st *stream, location int) (f Field, ok bool, err error) {
	start := st.pos
	if !st.eat(dollar) {
		return Field{}, false, nil
	}

	if index, ok := consumeIndex(st); ok {
		return Field{Index: index, Location: location}, true, nil
	}

	brace := st.pos
	if st.eat(openBrace) {
		if index, ok := consumeIndex(st); ok {
			var placeholder string
			if st.eat(colon) {
				placeholder, err = consumePlaceholder(st)
				if err != nil {
					return Field{}, false, err
				}
			}
			if st.eat(closeBrace) {
				return Field{Index: index, Placeholder: placeholder, Location: location}, true, nil
			}
			if st.eof() {
				return Field{}, false, &ParseError{
					Pos:   brace,
					Msg:   `Unable to find matching "}" for field at ` + strconv.Itoa(brace),
					Input: st.input,
				}
			}
		}
	}

	st.pos = start
	return Field{}, false, nil
}

// consumePlaceholder reads up to the '}' that closes the field, skipping
// balanced nested braces.
func consumePlaceholder(st *stream) (string, error) {
	start := st.pos
	var stack []int
	for !st.eof() {
		switch st.peek() {
		case openBrace:
			stack = append(stack, st.pos)
		case closeBrace:
			if len(stack) == 0 {
				return string(st.src[start:st.pos]), nil
			}
			stack = stack[:len(stack)-1]
		}
		st.pos++
	}

	if n := len(stack); n > 0 {
		open := stack[n-1]
		return "", &ParseError{
			Pos:   open,
			Msg:   `Unable to find matching "}" for curly brace at ` + strconv.Itoa(open),
			Input: st.input,
		}
	}
	return string(st.src[start:st.pos]), nil
}

func consumeIndex(st *stream) (int, bool) {
	start := st.pos
	n := 0
	for !st.eof() && isDigit(st.peek()) {
		n = n*10 + int(st.peek()-'0')
		st.pos++
	}
	return n, st.pos > start
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
