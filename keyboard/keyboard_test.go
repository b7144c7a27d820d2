package keyboard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/poke/internal/log"
)

type fakeEditor struct {
	mu       sync.Mutex
	inserted []string
	commands []string
	caret    bool
	err      error
}

func (f *fakeEditor) Insert(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, text)
	return f.err
}

func (f *fakeEditor) ExecName(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, name)
	return f.err
}

func (f *fakeEditor) ShowCaret() { f.mu.Lock(); f.caret = true; f.mu.Unlock() }
func (f *fakeEditor) HideCaret() { f.mu.Lock(); f.caret = false; f.mu.Unlock() }

func (f *fakeEditor) caretShown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caret
}

func newKeyboard(t *testing.T, opt Options) (*Keyboard, *fakeEditor) {
	t.Helper()
	ed := &fakeEditor{caret: true}
	kb, err := New(ed, opt)
	require.NoError(t, err)
	return kb, ed
}

func TestKeyboard_DefaultState(t *testing.T) {
	kb, _ := newKeyboard(t, Options{})
	assert.False(t, kb.Hidden())
	assert.True(t, kb.SymBlockActive())
	assert.False(t, kb.CustBlockActive())
	assert.Equal(t, LayoutPoke43, kb.SymLayout())
	assert.Equal(t, LayoutEnUsQwerty, kb.LangLayout())

	rows := kb.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "0", rows[0][0].Label())
	assert.Equal(t, "q", rows[1][0].Label())
}

func TestKeyboard_UnknownLayout(t *testing.T) {
	_, err := New(&fakeEditor{}, Options{LangLayout: "dvorak"})
	require.Error(t, err)
	_, err = New(&fakeEditor{}, Options{SymLayout: "nope"})
	require.Error(t, err)
}

func TestKeyboard_ToggleAndCycle(t *testing.T) {
	kb, _ := newKeyboard(t, Options{})

	require.NoError(t, kb.CycleSymBlockLayouts())
	assert.Equal(t, LayoutTextastic, kb.SymLayout())
	require.NoError(t, kb.CycleSymBlockLayouts())
	assert.Equal(t, LayoutPoke43, kb.SymLayout())

	require.NoError(t, kb.ToggleSymBlock())
	assert.False(t, kb.SymBlockActive())
	rows := kb.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, RoleCharSymSpaceMove, rows[0][0].Role, "language block uses its symbol rows")

	require.NoError(t, kb.CycleSymBlockLayouts())
	assert.Equal(t, LayoutPoke43, kb.SymLayout(), "cycling is a no-op while the symbol block is off")

	require.NoError(t, kb.ToggleCustBlock())
	assert.Len(t, kb.Rows(), 4)

	require.NoError(t, kb.CycleLangBlockLayouts())
	assert.Equal(t, LayoutBgBgPhonetic, kb.LangLayout())
	require.NoError(t, kb.CycleLangBlockLayouts())
	assert.Equal(t, LayoutEnUsQwerty, kb.LangLayout())
}

func TestKeyboard_PressRoutes(t *testing.T) {
	kb, ed := newKeyboard(t, Options{})

	q, ok := kb.FindKey("q")
	require.True(t, ok)
	require.NoError(t, kb.Press(q, Up))
	require.NoError(t, kb.Press(q, Right))
	assert.Equal(t, []string{"Q"}, ed.inserted)
	assert.Equal(t, []string{"moveForward"}, ed.commands)

	rows := kb.Rows()
	last := rows[len(rows)-1]
	globe, action := last[0], last[len(last)-1]
	require.Equal(t, RoleKeyboard, globe.Role)

	require.NoError(t, kb.Press(globe, Tap))
	assert.Equal(t, LayoutBgBgPhonetic, kb.LangLayout())

	require.NoError(t, kb.Press(action, Right))
	require.NoError(t, kb.Press(action, Down))
	assert.Equal(t, []string{"moveForward", "expandAbbreviation", "evalJS"}, ed.commands)

	require.NoError(t, kb.Press(action, Up))
	assert.True(t, kb.Hidden())
	assert.False(t, ed.caretShown())
}

func TestKeyboard_ExecNameUnknown(t *testing.T) {
	kb, _ := newKeyboard(t, Options{})
	err := kb.ExecName("explode")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}

func TestKeyboard_ActivateStopsOnInsertError(t *testing.T) {
	kb, ed := newKeyboard(t, Options{})
	ed.err = errors.New("boom")

	a, ok := kb.FindKey("a")
	require.True(t, ok)
	k := a
	k.Command[Down] = "moveToEnd"
	require.Error(t, kb.Press(k, Down))
	assert.Empty(t, ed.commands)
}

func TestKeyboard_ShowDebounced(t *testing.T) {
	kb, ed := newKeyboard(t, Options{ShowDebounce: 10 * time.Millisecond})

	// Visible keyboards ignore the request.
	kb.ShowDebounced(func() { t.Error("fired while visible") })

	require.NoError(t, kb.Hide())
	fired := make(chan struct{}, 2)
	kb.ShowDebounced(func() { fired <- struct{}{} })
	kb.ShowDebounced(func() { fired <- struct{}{} }) // already pending

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced show never fired")
	}
	require.NoError(t, kb.Show())
	assert.False(t, kb.Hidden())
	assert.True(t, ed.caretShown())

	select {
	case <-fired:
		t.Fatal("second request scheduled a second show")
	case <-time.After(50 * time.Millisecond):
	}
}

// lockedBuffer is written by the timer goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestKeyboard_ShowDebouncedDefaultFire(t *testing.T) {
	out := &lockedBuffer{}
	log.SetOutput(out)
	t.Cleanup(func() { log.SetOutput(nil) })

	kb, ed := newKeyboard(t, Options{ShowDebounce: time.Millisecond, Hidden: true})
	kb.ShowDebounced(nil)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "[keyboard] debounced show")
	}, 2*time.Second, 5*time.Millisecond)
	assert.False(t, kb.Hidden())
	assert.True(t, ed.caretShown())
	assert.NotContains(t, out.String(), "failed")
}

func TestKeyboard_HideCancelsPendingShow(t *testing.T) {
	kb, _ := newKeyboard(t, Options{ShowDebounce: 20 * time.Millisecond, Hidden: true})

	kb.ShowDebounced(func() { t.Error("cancelled show fired") })
	require.NoError(t, kb.Hide())
	kb.CancelShow()
	time.Sleep(60 * time.Millisecond)
	assert.True(t, kb.Hidden())
}

func TestKeyboard_DispatchOverride(t *testing.T) {
	cross := DispatchCross
	kb, _ := newKeyboard(t, Options{Dispatch: &cross})
	for _, r := range kb.Rows() {
		for _, k := range r {
			assert.Equal(t, DispatchCross, k.Dispatch)
		}
	}
}

func TestLayouts_YAML(t *testing.T) {
	data := []byte(`
lang:
  - name: tiny
    rows:
      - - role: character_space_move
          text: {0: x}
        - role: keyboard
          command: {0: cycleLangBlockLayouts}
          hint: {0: "@"}
symbol:
  - name: poke43
    rows:
      - - role: symbol
          text: {0: "!", 2: "?"}
          dispatch: eight_way
          hints: eight_way
`)
	extra, err := ParseLayouts(data)
	require.NoError(t, err)

	l := DefaultLayouts()
	l.Merge(extra)
	require.Len(t, l.Symbol, 2, "poke43 is replaced, not appended")
	require.Len(t, l.Lang, 3)
	assert.True(t, l.Has("tiny"))
	assert.False(t, l.Has("missing"))

	kb, _ := newKeyboard(t, Options{Layouts: l, LangLayout: "tiny"})
	rows := kb.Rows()
	require.Len(t, rows, 2)
	sym := rows[0][0]
	assert.Equal(t, "?", sym.Text[UpRight])
	assert.Equal(t, DispatchEightWay, sym.Dispatch)
	assert.Equal(t, HintEightWay, sym.Hints)

	x := rows[1][0]
	assert.Equal(t, "X", x.Text[Up])
	assert.Equal(t, "moveForward", x.Command[Right])
	assert.Equal(t, "@", rows[1][1].Label())
}

func TestLayouts_YAMLErrors(t *testing.T) {
	_, err := ParseLayouts([]byte("lang:\n  - name: x\n    rows:\n      - - role: wizard\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard")

	_, err = ParseLayouts([]byte("lang:\n  - rows: []\n"))
	require.Error(t, err)

	bad, err := ParseLayouts([]byte("lang:\n  - name: x\n    rows:\n      - - role: symbol\n          text: {9: z}\n"))
	require.NoError(t, err)
	_, err = New(&fakeEditor{}, Options{Layouts: bad})
	require.Error(t, err)
}

func TestLayouts_MarshalRoundTrip(t *testing.T) {
	want := DefaultLayouts()
	data, err := MarshalLayouts(want)
	require.NoError(t, err)

	got, err := ParseLayouts(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadLayoutsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("custom:\n  - - role: custom\n      text: {0: \"()\"}\n"), 0o600))

	l, err := LoadLayoutsFile(path)
	require.NoError(t, err)
	require.Len(t, l.Custom, 1)
	assert.Equal(t, "()", l.Custom[0][0].Text[0])
	assert.Len(t, l.Lang, 2)

	_, err = LoadLayoutsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
