package editor

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var propCommands = []Command{
	CmdMoveBackward, CmdMoveForward, CmdMoveBackwardWB, CmdMoveForwardWB,
	CmdMoveToSOL, CmdMoveToEOL, CmdMoveToStart, CmdMoveToEnd,
	CmdDeleteBackward, CmdDeleteForward, CmdDeleteBackwardWB, CmdDeleteForwardWB,
}

func docGen() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.SampledFrom([]rune("ab _(){}\n é\u0301\u200d")), 0, 30, -1)
}

// plainDocGen leaves out marks that merge with whatever is inserted before
// them.
func plainDocGen() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.SampledFrom([]rune("ab _(){}\n é")), 0, 30, -1)
}

// Any sequence of commands and single-character inserts keeps the view in
// step with the buffer and never trips a bounds check.
func TestProperty_CommandsKeepViewInSync(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := NewView()
		ed := New(Config{Text: docGen().Draw(t, "text")}, WithRenderer(v))

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			var err error
			if rapid.Bool().Draw(t, "insert") {
				s := rapid.SampledFrom([]string{"a", " ", "\n", "(", "[", "{", "'", `"`, "`", ")", "\u0301", "\u200d"}).Draw(t, "char")
				err = ed.Insert(s)
			} else {
				cmd := rapid.SampledFrom(propCommands).Draw(t, "cmd")
				err = ed.Exec(cmd)
			}
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}

			if got, want := strings.Join(v.Lines(), "\n"), ed.Content(); got != want {
				t.Fatalf("step %d: view=%q, buffer=%q", i, got, want)
			}
			if got, want := v.CaretLine(), ed.Caret().Line; got != want {
				t.Fatalf("step %d: view caret line=%d, want %d", i, got, want)
			}
			before, after := ed.Buffer().CaretLineParts()
			if vb, va := v.CaretParts(); vb != before || va != after {
				t.Fatalf("step %d: view parts=(%q,%q), want (%q,%q)", i, vb, va, before, after)
			}
		}
	})
}

// Inserting text with k newlines adds exactly k lines, and the text lands
// verbatim at the caret.
func TestProperty_MultiLineInsertAddsLines(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ed := New(Config{Text: plainDocGen().Draw(t, "text")})
		line := rapid.IntRange(0, ed.Buffer().LineCount()-1).Draw(t, "line")
		n, _ := ed.Buffer().LineLen(line)
		col := rapid.IntRange(0, n).Draw(t, "col")
		if err := ed.MoveCaret(line, col); err != nil {
			t.Fatalf("move: %v", err)
		}
		text := rapid.StringOfN(rapid.SampledFrom([]rune("xy\n")), 2, 20, -1).Draw(t, "insert")

		before, after := ed.Buffer().CaretLineParts()
		lines := ed.Buffer().Lines()
		count := ed.Buffer().LineCount()

		if err := ed.Insert(text); err != nil {
			t.Fatalf("insert: %v", err)
		}

		if got, want := ed.Buffer().LineCount(), count+strings.Count(text, "\n"); got != want {
			t.Fatalf("line count=%d, want %d", got, want)
		}
		lines[line] = before + text + after
		if got, want := ed.Content(), strings.Join(lines, "\n"); got != want {
			t.Fatalf("content=%q, want %q", got, want)
		}
		segs := strings.Split(before+text, "\n")
		if got, want := ed.Caret().Line, line+len(segs)-1; got != want {
			t.Fatalf("caret line=%d, want %d", got, want)
		}
		if got, _ := ed.Buffer().CaretLineParts(); got != segs[len(segs)-1] {
			t.Fatalf("text before caret=%q, want %q", got, segs[len(segs)-1])
		}
	})
}
