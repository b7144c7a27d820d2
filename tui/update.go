package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/poke/editor"
	"github.com/iw2rmb/poke/internal/log"
	"github.com/iw2rmb/poke/keyboard"
)

// Arrow swipe angles in degrees, matching keyboard.DispatchStyle.
const (
	angleUp    = -90
	angleRight = 0
	angleDown  = 90
	angleLeft  = 180
)

var errNoKey = errors.New("no visible key")

// numpad maps digits to directions laid out like a numeric keypad.
var numpad = map[string]keyboard.Direction{
	"7": keyboard.UpLeft, "8": keyboard.Up, "9": keyboard.UpRight,
	"4": keyboard.Left, "5": keyboard.Tap, "6": keyboard.Right,
	"1": keyboard.DownLeft, "2": keyboard.Down, "3": keyboard.DownRight,
}

// Update handles a message and returns the updated model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case showKeyboardMsg:
		if err := m.kb.Show(); err != nil {
			m.fail(err)
		}
		m.layout()
		m.followCaret()
		return m, m.waitForShow()
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		hidden := m.kb.Hidden()
		var edited bool
		m, edited = m.updateKey(msg)
		if edited && hidden && m.kb.Hidden() {
			m.kb.ShowDebounced(m.fireShow)
		}
		m.layout()
		m.followCaret()
		return m, nil
	}
	return m, nil
}

// updateKey reports whether the key reached the editor.
func (m Model) updateKey(msg tea.KeyMsg) (Model, bool) {
	if m.hasArmed {
		return m.updateArmed(msg), true
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.run(func() error { return m.ed.Insert(normalizeNewlines(string(msg.Runes))) }), true
	}

	km := m.cfg.KeyMap
	var cmd editor.Command
	switch {
	case key.Matches(msg, km.Left):
		cmd = editor.CmdMoveBackward
	case key.Matches(msg, km.Right):
		cmd = editor.CmdMoveForward
	case key.Matches(msg, km.WordLeft):
		cmd = editor.CmdMoveBackwardWB
	case key.Matches(msg, km.WordRight):
		cmd = editor.CmdMoveForwardWB
	case key.Matches(msg, km.Home):
		cmd = editor.CmdMoveToSOL
	case key.Matches(msg, km.End):
		cmd = editor.CmdMoveToEOL
	case key.Matches(msg, km.DocStart):
		cmd = editor.CmdMoveToStart
	case key.Matches(msg, km.DocEnd):
		cmd = editor.CmdMoveToEnd
	case key.Matches(msg, km.Backspace):
		cmd = editor.CmdDeleteBackward
	case key.Matches(msg, km.Delete):
		cmd = editor.CmdDeleteForward
	case key.Matches(msg, km.WordBackspace):
		cmd = editor.CmdDeleteBackwardWB
	case key.Matches(msg, km.WordDelete):
		cmd = editor.CmdDeleteForwardWB
	case key.Matches(msg, km.Expand):
		cmd = editor.CmdExpandAbbreviation
	case key.Matches(msg, km.Eval):
		cmd = editor.CmdEvalScript

	case key.Matches(msg, km.Up):
		return m.run(func() error { return m.moveVertical(-1) }), true
	case key.Matches(msg, km.Down):
		return m.run(func() error { return m.moveVertical(1) }), true
	case key.Matches(msg, km.Enter):
		return m.run(func() error { return m.ed.Insert("\n") }), true

	case key.Matches(msg, km.Copy):
		return m.copyLine(), false
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard(), true

	case key.Matches(msg, km.HideKeyboard):
		return m.keyboardCommand("hide"), false
	case key.Matches(msg, km.ToggleSymBlock):
		return m.keyboardCommand("toggleSymBlock"), false
	case key.Matches(msg, km.CycleSymBlock):
		return m.keyboardCommand("cycleSymBlockLayouts"), false
	case key.Matches(msg, km.ToggleCustom):
		return m.keyboardCommand("toggleCustBlock"), false
	case key.Matches(msg, km.CycleLang):
		return m.keyboardCommand("cycleLangBlockLayouts"), false

	default:
		if msg.Type == tea.KeySpace {
			return m.run(func() error { return m.ed.Insert(" ") }), true
		}
		if msg.Type == tea.KeyRunes && msg.Alt && len(msg.Runes) > 0 {
			return m.arm(string(msg.Runes)), false
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			return m.run(func() error { return m.ed.Insert(string(msg.Runes)) }), true
		}
		return m, false
	}

	return m.run(func() error { return m.ed.Exec(cmd) }), true
}

// arm selects the visible key whose tap text is text. The next arrow,
// digit or enter activates it.
func (m Model) arm(text string) Model {
	k, ok := m.kb.FindKey(text)
	if !ok {
		m.out.fail(fmt.Errorf("%w: %q", errNoKey, text))
		return m
	}
	m.armed, m.hasArmed = k, true
	log.Debug(log.CatUI, "armed key", "text", text, "role", k.Role)
	return m
}

func (m Model) updateArmed(msg tea.KeyMsg) Model {
	k := m.armed
	km := m.cfg.KeyMap
	m.armed, m.hasArmed = keyboard.Key{}, false

	switch {
	case key.Matches(msg, km.Cancel):
		return m
	case key.Matches(msg, km.Up):
		return m.press(k, k.Resolve(angleUp))
	case key.Matches(msg, km.Right):
		return m.press(k, k.Resolve(angleRight))
	case key.Matches(msg, km.Down):
		return m.press(k, k.Resolve(angleDown))
	case key.Matches(msg, km.Left):
		return m.press(k, k.Resolve(angleLeft))
	case key.Matches(msg, km.Enter):
		return m.press(k, keyboard.Tap)
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if d, ok := numpad[string(msg.Runes)]; ok {
			return m.press(k, d)
		}
	}
	// Anything else drops the armed key and is handled normally.
	m, _ = m.updateKey(msg)
	return m
}

func (m Model) press(k keyboard.Key, d keyboard.Direction) Model {
	return m.run(func() error { return m.kb.Press(k, d) })
}

func (m Model) keyboardCommand(name string) Model {
	return m.run(func() error { return m.kb.ExecName(name) })
}

// run executes an edit and reports its error on the status line.
func (m Model) run(fn func() error) Model {
	m.out.clear()
	if err := fn(); err != nil {
		m.fail(err)
	}
	return m
}

func (m Model) fail(err error) {
	log.ErrorErr(log.CatUI, "command failed", err)
	m.out.fail(err)
}

// moveVertical moves the caret delta lines, keeping its column where the
// target line allows.
func (m Model) moveVertical(delta int) error {
	caret := m.ed.Caret()
	line := caret.Line + delta
	if line < 0 || line >= m.ed.Buffer().LineCount() {
		return nil
	}
	n, err := m.ed.Buffer().LineLen(line)
	if err != nil {
		return err
	}
	return m.ed.MoveCaret(line, min(caret.Col, n))
}

func (m Model) copyLine() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	return m.run(func() error { return m.cfg.Clipboard.WriteText(m.ed.Buffer().CaretLine()) })
}

func (m Model) pasteClipboard() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	return m.run(func() error {
		s, err := m.cfg.Clipboard.ReadText()
		if err != nil || s == "" {
			return err
		}
		return m.ed.Insert(normalizeNewlines(s))
	})
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionRelease:
		return m.releaseKey(msg), nil
	case tea.MouseActionPress:
	default:
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if k, ok := m.keyAt(msg.X, msg.Y); ok {
		m.gesture = gesture{key: k, x: msg.X, y: msg.Y, active: true}
		return m, nil
	}
	if msg.Y >= m.viewport.Height {
		return m, nil
	}

	line := min(msg.Y+m.viewport.YOffset, m.ed.Buffer().LineCount()-1)
	text, err := m.ed.Buffer().Line(line)
	if err != nil {
		m.fail(err)
		return m, nil
	}
	cell := max(msg.X-m.gutterWidth(), 0) + m.xOffset
	m.focused = true
	m = m.run(func() error { return m.ed.MoveCaret(line, colAtCell(text, cell)) })
	m.followCaret()
	return m, nil
}

// releaseKey ends a press that started on a key. Releasing where it
// started taps the key; anywhere else swipes it towards the release point.
func (m Model) releaseKey(msg tea.MouseMsg) Model {
	g := m.gesture
	m.gesture = gesture{}
	if !g.active {
		return m
	}

	d := keyboard.Tap
	if dx, dy := msg.X-g.x, msg.Y-g.y; dx != 0 || dy != 0 {
		// Cells are roughly twice as tall as they are wide.
		angle := math.Atan2(float64(2*dy), float64(dx)) * 180 / math.Pi
		d = g.key.Resolve(angle)
	}
	log.Debug(log.CatUI, "mouse gesture", "key", g.key.Label(), "dir", d)
	m = m.press(g.key, d)
	m.layout()
	m.followCaret()
	return m
}
