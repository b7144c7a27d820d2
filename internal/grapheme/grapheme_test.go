package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Join(got) != text {
		t.Fatalf("join=%q, want %q", Join(got), text)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split empty=%v, want nil", got)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count empty=%d, want 0", c)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}

func TestIsWord(t *testing.T) {
	cases := []struct {
		cluster string
		ascii   bool
		unicode bool
	}{
		{cluster: "a", ascii: true, unicode: true},
		{cluster: "Z", ascii: true, unicode: true},
		{cluster: "7", ascii: true, unicode: true},
		{cluster: "_", ascii: true, unicode: true},
		{cluster: " ", ascii: false, unicode: false},
		{cluster: "(", ascii: false, unicode: false},
		{cluster: "\u0436", ascii: false, unicode: true},  // Cyrillic zhe
		{cluster: "e\u0301", ascii: false, unicode: true}, // e + combining acute
		{cluster: family, ascii: false, unicode: false},
	}

	for _, tc := range cases {
		if got := IsWord(ClassASCII, tc.cluster); got != tc.ascii {
			t.Fatalf("IsWord(ascii, %q)=%v, want %v", tc.cluster, got, tc.ascii)
		}
		if got := IsWord(ClassUnicode, tc.cluster); got != tc.unicode {
			t.Fatalf("IsWord(unicode, %q)=%v, want %v", tc.cluster, got, tc.unicode)
		}
	}
}

func TestParseClass(t *testing.T) {
	cases := []struct {
		name string
		want Class
		ok   bool
	}{
		{name: "", want: ClassASCII, ok: true},
		{name: "ASCII", want: ClassASCII, ok: true},
		{name: " unicode ", want: ClassUnicode, ok: true},
		{name: "klingon", want: ClassASCII, ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseClass(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseClass(%q)=(%v,%v), want (%v,%v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
