package keyboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iw2rmb/poke/internal/log"
)

// DefaultShowDebounce delays showing a hidden keyboard after an edit.
const DefaultShowDebounce = 100 * time.Millisecond

// ErrUnknownCommand is returned for names that are neither keyboard nor
// forwarded editor commands.
var ErrUnknownCommand = errors.New("unknown keyboard command")

// Editor is what the keyboard drives.
type Editor interface {
	Target
	ShowCaret()
	HideCaret()
}

// Block is a layout with its keys built.
type Block struct {
	Name    string
	Rows    [][]Key
	SymRows [][]Key
}

// Options configures a Keyboard.
type Options struct {
	Layouts      Layouts
	SymLayout    string
	LangLayout   string
	ShowDebounce time.Duration
	Hidden       bool
	// Dispatch overrides the dispatch style of every key when set.
	Dispatch *DispatchStyle
}

// Keyboard holds the key blocks and which of them are showing. It is safe
// for use from the debounce timer goroutine.
type Keyboard struct {
	mu sync.Mutex

	editor Editor
	sym    []Block
	lang   []Block
	custom [][]Key

	symActive  bool
	symIdx     int
	custActive bool
	langIdx    int
	hidden     bool

	debounce time.Duration
	timer    *time.Timer
}

// New builds every layout in opt.Layouts. Unknown start layout names fail.
func New(ed Editor, opt Options) (*Keyboard, error) {
	layouts := opt.Layouts
	if len(layouts.Symbol) == 0 && len(layouts.Lang) == 0 {
		layouts = DefaultLayouts()
	}
	if len(layouts.Lang) == 0 {
		return nil, errors.New("keyboard: no language layouts")
	}

	k := &Keyboard{
		editor:    ed,
		symActive: len(layouts.Symbol) > 0,
		hidden:    opt.Hidden,
		debounce:  opt.ShowDebounce,
	}
	if k.debounce == 0 {
		k.debounce = DefaultShowDebounce
	}

	var err error
	if k.sym, err = buildBlocks(layouts.Symbol, opt.Dispatch); err != nil {
		return nil, err
	}
	if k.lang, err = buildBlocks(layouts.Lang, opt.Dispatch); err != nil {
		return nil, err
	}
	if k.custom, err = buildRows(layouts.Custom); err != nil {
		return nil, fmt.Errorf("custom block: %w", err)
	}
	overrideDispatch(k.custom, opt.Dispatch)

	if opt.SymLayout != "" && len(k.sym) > 0 {
		if k.symIdx = blockIndex(k.sym, opt.SymLayout); k.symIdx < 0 {
			return nil, fmt.Errorf("keyboard: unknown symbol layout %q", opt.SymLayout)
		}
	}
	if opt.LangLayout != "" {
		if k.langIdx = blockIndex(k.lang, opt.LangLayout); k.langIdx < 0 {
			return nil, fmt.Errorf("keyboard: unknown language layout %q", opt.LangLayout)
		}
	}
	return k, nil
}

func buildBlocks(ls []Layout, dispatch *DispatchStyle) ([]Block, error) {
	blocks := make([]Block, 0, len(ls))
	for _, l := range ls {
		rows, err := buildRows(l.Rows)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", l.Name, err)
		}
		symRows, err := buildRows(l.SymRows)
		if err != nil {
			return nil, fmt.Errorf("layout %s sym rows: %w", l.Name, err)
		}
		overrideDispatch(rows, dispatch)
		overrideDispatch(symRows, dispatch)
		blocks = append(blocks, Block{Name: l.Name, Rows: rows, SymRows: symRows})
	}
	return blocks, nil
}

func overrideDispatch(rows [][]Key, dispatch *DispatchStyle) {
	if dispatch == nil {
		return
	}
	for _, r := range rows {
		for i := range r {
			r[i].Dispatch = *dispatch
		}
	}
}

func blockIndex(bs []Block, name string) int {
	for i, b := range bs {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Rows returns the visible rows, top to bottom: symbol block, custom block,
// then the language block. While the symbol block is off the language
// block shows its symbol-bearing rows when it has them.
func (k *Keyboard) Rows() [][]Key {
	k.mu.Lock()
	defer k.mu.Unlock()

	var rows [][]Key
	if k.symActive && len(k.sym) > 0 {
		rows = append(rows, k.sym[k.symIdx].Rows...)
	}
	if k.custActive {
		rows = append(rows, k.custom...)
	}
	lang := k.lang[k.langIdx]
	if !k.symActive && len(lang.SymRows) > 0 {
		rows = append(rows, lang.SymRows...)
	} else {
		rows = append(rows, lang.Rows...)
	}
	return rows
}

// FindKey returns the first visible key whose tap text is text.
func (k *Keyboard) FindKey(text string) (Key, bool) {
	if text == "" {
		return Key{}, false
	}
	for _, r := range k.Rows() {
		for _, key := range r {
			if key.Text[Tap] == text {
				return key, true
			}
		}
	}
	return Key{}, false
}

// Press activates key in direction d. Keyboard-role keys act on the
// keyboard; all others act on the editor.
func (k *Keyboard) Press(key Key, d Direction) error {
	var t Target = k.editor
	if key.Role == RoleKeyboard {
		t = k
	}
	return key.Activate(d, t)
}

// Insert forwards text to the editor.
func (k *Keyboard) Insert(text string) error {
	return k.editor.Insert(text)
}

var keyboardCommands = map[string]func(*Keyboard) error{
	"hide":                  (*Keyboard).Hide,
	"show":                  (*Keyboard).Show,
	"toggleSymBlock":        (*Keyboard).ToggleSymBlock,
	"cycleSymBlockLayouts":  (*Keyboard).CycleSymBlockLayouts,
	"toggleCustBlock":       (*Keyboard).ToggleCustBlock,
	"cycleLangBlockLayouts": (*Keyboard).CycleLangBlockLayouts,
}

// forwarded commands are accepted by keyboard keys and run on the editor.
var forwarded = map[string]bool{
	"expandAbbreviation": true,
	"evalJS":             true,
}

// ExecName runs a keyboard command by name.
func (k *Keyboard) ExecName(name string) error {
	if fn, ok := keyboardCommands[name]; ok {
		log.Debug(log.CatKeyboard, "command", "name", name)
		return fn(k)
	}
	if forwarded[name] {
		return k.editor.ExecName(name)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// ToggleSymBlock shows or hides the symbol block. The language block
// switches to its symbol-bearing rows while the symbol block is off.
func (k *Keyboard) ToggleSymBlock() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.sym) == 0 {
		return nil
	}
	k.symActive = !k.symActive
	return nil
}

// CycleSymBlockLayouts moves to the next symbol layout. It does nothing
// while the symbol block is hidden.
func (k *Keyboard) CycleSymBlockLayouts() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.symActive || len(k.sym) == 0 {
		return nil
	}
	k.symIdx = (k.symIdx + 1) % len(k.sym)
	return nil
}

// ToggleCustBlock shows or hides the custom block.
func (k *Keyboard) ToggleCustBlock() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.custActive = !k.custActive
	return nil
}

// CycleLangBlockLayouts moves to the next language layout.
func (k *Keyboard) CycleLangBlockLayouts() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.langIdx = (k.langIdx + 1) % len(k.lang)
	return nil
}

// Hide hides the keyboard and the caret and cancels a pending show.
func (k *Keyboard) Hide() error {
	k.mu.Lock()
	k.stopTimerLocked()
	k.hidden = true
	k.mu.Unlock()

	k.editor.HideCaret()
	return nil
}

// Show shows the keyboard and the caret.
func (k *Keyboard) Show() error {
	k.mu.Lock()
	k.stopTimerLocked()
	k.hidden = false
	k.mu.Unlock()

	k.editor.ShowCaret()
	return nil
}

// ShowDebounced schedules a show after the debounce delay when the keyboard
// is hidden and no show is pending. When the timer fires, fire is called
// on the timer goroutine; hosts use it to marshal Show onto their own
// loop. A nil fire calls Show directly.
func (k *Keyboard) ShowDebounced(fire func()) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.hidden || k.timer != nil {
		return
	}
	if fire == nil {
		fire = func() {
			if err := k.Show(); err != nil {
				log.ErrorErr(log.CatKeyboard, "debounced show failed", err)
				return
			}
			log.Debug(log.CatKeyboard, "debounced show")
		}
	}

	var t *time.Timer
	t = time.AfterFunc(k.debounce, func() {
		k.mu.Lock()
		current := k.timer == t
		if current {
			k.timer = nil
		}
		k.mu.Unlock()
		if current {
			fire()
		}
	})
	k.timer = t
}

// CancelShow drops a pending debounced show.
func (k *Keyboard) CancelShow() {
	k.mu.Lock()
	k.stopTimerLocked()
	k.mu.Unlock()
}

func (k *Keyboard) stopTimerLocked() {
	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
}

func (k *Keyboard) Hidden() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.hidden
}

// SymBlockActive reports whether the symbol block is showing.
func (k *Keyboard) SymBlockActive() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.symActive
}

// CustBlockActive reports whether the custom block is showing.
func (k *Keyboard) CustBlockActive() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.custActive
}

// SymLayout is the name of the current symbol layout, or "".
func (k *Keyboard) SymLayout() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.sym) == 0 {
		return ""
	}
	return k.sym[k.symIdx].Name
}

// LangLayout is the name of the current language layout.
func (k *Keyboard) LangLayout() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.lang[k.langIdx].Name
}
