package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/poke/buffer"
)

// newTestEditor returns an editor over text with the caret at (line, col)
// and the View it renders into.
func newTestEditor(t *testing.T, text string, line, col int, opts ...Option) (*Editor, *View) {
	t.Helper()
	v := NewView()
	ed := New(Config{Text: text}, append([]Option{WithRenderer(v)}, opts...)...)
	require.NoError(t, ed.MoveCaret(line, col))
	assertSynced(t, ed, v)
	return ed, v
}

// assertSynced checks that the view shows exactly what the buffer holds.
func assertSynced(t *testing.T, ed *Editor, v *View) {
	t.Helper()
	require.Equal(t, ed.Buffer().Lines(), v.Lines(), "rendered lines")
	require.Equal(t, ed.Caret().Line, v.CaretLine(), "rendered caret line")
	before, after := ed.Buffer().CaretLineParts()
	gotBefore, gotAfter := v.CaretParts()
	require.Equal(t, before, gotBefore, "caret line before caret")
	require.Equal(t, after, gotAfter, "caret line after caret")
}

func TestNew_Defaults(t *testing.T) {
	ed := New(Config{Text: "a\nb"})
	assert.Equal(t, DefaultIndentUnit, ed.IndentUnit())
	assert.Equal(t, buffer.Caret{}, ed.Caret())
	assert.Equal(t, "a\nb", ed.Content())
	assert.IsType(t, NopRenderer{}, ed.Renderer())
}

func TestNew_RendersFully(t *testing.T) {
	v := NewView()
	New(Config{Text: "ab\ncd"}, WithRenderer(v))

	assert.Equal(t, []string{"ab", "cd"}, v.Lines())
	assert.Equal(t, 0, v.CaretLine())
	before, after := v.CaretParts()
	assert.Equal(t, "", before)
	assert.Equal(t, "ab", after)
}

func TestNew_NilOptionsKeepDefaults(t *testing.T) {
	ed := New(Config{}, WithRenderer(nil), WithExtractor(nil), WithExpander(nil), WithEvaluator(nil), WithOutput(nil))
	assert.NotNil(t, ed.r)
	assert.NotNil(t, ed.extractor)
	assert.NotNil(t, ed.expander)
	assert.NotNil(t, ed.evaluator)
	assert.NotNil(t, ed.out)
}

func TestSetContent_ResetsCaretAndRerenders(t *testing.T) {
	ed, v := newTestEditor(t, "abc\ndef", 1, 2)

	ed.SetContent("\nxyz\n")

	assert.Equal(t, "\nxyz\n", ed.Content())
	assert.Equal(t, buffer.Caret{}, ed.Caret())
	assertSynced(t, ed, v)
}

func TestMoveCaret_OutOfBounds(t *testing.T) {
	ed, v := newTestEditor(t, "ab", 0, 1)

	err := ed.MoveCaret(0, 3)
	require.ErrorIs(t, err, buffer.ErrOutOfBounds)
	assert.Equal(t, buffer.Caret{Line: 0, Col: 1}, ed.Caret())
	assertSynced(t, ed, v)
}

func TestShowHideCaret(t *testing.T) {
	ed, v := newTestEditor(t, "ab", 0, 0)

	ed.HideCaret()
	assert.False(t, v.CaretVisible())
	ed.ShowCaret()
	assert.True(t, v.CaretVisible())
}
