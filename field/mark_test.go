package field

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCreateToken(t *testing.T) {
	assert.Equal(t, "${1:name}", CreateToken(1, "name"))
	assert.Equal(t, "${3}", CreateToken(3, ""))
}

func TestMark(t *testing.T) {
	s, err := Parse("a${1:b}c$2")
	require.NoError(t, err)
	assert.Equal(t, "a${1:b}c${2}", s.Mark(nil))

	custom := func(index int, placeholder string) string {
		return "[" + strconv.Itoa(index) + "|" + placeholder + "]"
	}
	assert.Equal(t, "a[1|b]c[2|]", Mark(s.Text, s.Fields, custom))
}

func TestMark_OrdersByEnd(t *testing.T) {
	text := "abcd"
	fields := []Field{
		{Index: 2, Placeholder: "d", Location: 3},
		{Index: 3, Location: 3},
		{Index: 1, Placeholder: "bc", Location: 1},
	}
	assert.Equal(t, "a${1:bc}${3}${2:d}", Mark(text, fields, nil))
}

func TestMark_EqualEndsOrderByLocation(t *testing.T) {
	text := "abcd"
	fields := []Field{
		{Index: 3, Location: 4},
		{Index: 2, Placeholder: "d", Location: 3},
	}
	assert.Equal(t, "abc${2:d}${3}", Mark(text, fields, nil))
}

func TestMark_EmptyFields(t *testing.T) {
	assert.Equal(t, "unchanged", Mark("unchanged", nil, nil))
}

// Building a string from literal and field segments, marking it and parsing
// it back yields the same string and fields.
func TestProperty_MarkParseRoundTrip(t *testing.T) {
	word := rapid.StringOfN(rapid.RuneFrom([]rune("abc xyж\n")), 0, 6, -1)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(t, "segments")

		var sb strings.Builder
		var fields []Field
		loc := 0
		for i := 0; i < n; i++ {
			lit := word.Draw(t, "literal")
			sb.WriteString(lit)
			loc += len([]rune(lit))

			if !rapid.Bool().Draw(t, "field") {
				continue
			}
			f := Field{
				Index:       rapid.IntRange(0, 20).Draw(t, "index"),
				Placeholder: word.Draw(t, "placeholder"),
				Location:    loc,
			}
			sb.WriteString(f.Placeholder)
			loc += f.Length()
			fields = append(fields, f)
		}
		text := sb.String()

		got, err := Parse(Mark(text, fields, nil))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got.Text != text {
			t.Fatalf("text=%q, want %q", got.Text, text)
		}
		if len(got.Fields) != len(fields) {
			t.Fatalf("fields=%+v, want %+v", got.Fields, fields)
		}
		for i := range fields {
			if got.Fields[i] != fields[i] {
				t.Fatalf("field %d=%+v, want %+v", i, got.Fields[i], fields[i])
			}
		}
	})
}
