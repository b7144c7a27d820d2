package buffer

import (
	"testing"

	"github.com/iw2rmb/poke/internal/grapheme"
)

func TestIsIndentOnly(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: "", want: true},
		{in: "    ", want: true},
		{in: "\t ", want: true},
		{in: "  x", want: false},
		{in: "x", want: false},
	}
	for _, tc := range cases {
		if got := IsIndentOnly(tc.in); got != tc.want {
			t.Fatalf("IsIndentOnly(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGetIndent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abc", want: ""},
		{in: "  abc", want: "  "},
		{in: "\t  x  ", want: "\t  "},
		{in: "   ", want: "   "},
	}
	for _, tc := range cases {
		if got := GetIndent(tc.in); got != tc.want {
			t.Fatalf("GetIndent(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWordAdjacency_ASCII(t *testing.T) {
	b := New("", Options{})

	if !b.EndsWithWord("foo") || b.EndsWithWord("foo ") || b.EndsWithWord("") {
		t.Fatalf("EndsWithWord misclassified")
	}
	if !b.StartsWithWord("_x") || b.StartsWithWord("(x") || b.StartsWithWord("") {
		t.Fatalf("StartsWithWord misclassified")
	}
	if b.StartsWithWord("жук") {
		t.Fatalf("Cyrillic must not be a word character under the ASCII class")
	}
}

func TestWordAdjacency_Unicode(t *testing.T) {
	b := New("", Options{WordClass: grapheme.ClassUnicode})

	if !b.StartsWithWord("жук") {
		t.Fatalf("Cyrillic should be a word character under the Unicode class")
	}
	if !b.EndsWithWord("café") {
		t.Fatalf("letter with combining mark should be a word character")
	}
	if b.EndsWithWord("x!") {
		t.Fatalf("punctuation is not a word character")
	}
}
