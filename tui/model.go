package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/poke/editor"
	"github.com/iw2rmb/poke/keyboard"
)

// showKeyboardMsg is sent when the keyboard's debounced show fires.
type showKeyboardMsg struct{}

// Model is a Bubble Tea model hosting an editor and its keyboard.
type Model struct {
	cfg Config

	ed   *editor.Editor
	view *editor.View
	kb   *keyboard.Keyboard
	out  *statusLine

	focused bool

	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	xOffset  int

	armed    keyboard.Key
	hasArmed bool
	gesture  gesture

	// show carries debounced keyboard show events from the timer goroutine
	// into Update.
	show chan struct{}
}

// gesture is a mouse press that started on a keyboard key.
type gesture struct {
	key    keyboard.Key
	x, y   int
	active bool
}

// statusLine collects evaluation output and errors for the bottom line.
type statusLine struct {
	text  string
	isErr bool
}

func (s *statusLine) Print(value, excerpt string) {
	s.text = value
	if excerpt != "" {
		s.text = "// " + excerpt + " => " + value
	}
	s.isErr = false
}

func (s *statusLine) fail(err error) {
	s.text = err.Error()
	s.isErr = true
}

func (s *statusLine) clear() { *s = statusLine{} }

func New(cfg Config) (Model, error) {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	ecfg := cfg.Editor
	if cfg.Text != "" {
		ecfg.Text = cfg.Text
	}

	view := editor.NewView()
	out := &statusLine{}
	ed := editor.New(ecfg, editor.WithRenderer(view), editor.WithOutput(out))
	kb, err := keyboard.New(ed, cfg.Keyboard)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		ed:       ed,
		view:     view,
		kb:       kb,
		out:      out,
		focused:  true,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		show:     make(chan struct{}, 1),
	}
	m.rebuildContent()
	return m, nil
}

func (m Model) Editor() *editor.Editor { return m.ed }

func (m Model) Keyboard() *keyboard.Keyboard { return m.kb }

// Init starts listening for debounced keyboard show events.
func (m Model) Init() tea.Cmd { return m.waitForShow() }

func (m Model) waitForShow() tea.Cmd {
	ch := m.show
	return func() tea.Msg {
		<-ch
		return showKeyboardMsg{}
	}
}

// fireShow runs on the debounce timer goroutine.
func (m Model) fireShow() {
	select {
	case m.show <- struct{}{}:
	default:
	}
}

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.help.Width = m.width
	m.layout()
	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetShowLineNums toggles the line-number gutter.
func (m Model) SetShowLineNums(on bool) Model {
	m.cfg.ShowLineNums = on
	m.rebuildContent()
	m.followCaret()
	return m
}

// Notify shows text on the status line. A non-nil err replaces it with the
// error.
func (m Model) Notify(text string, err error) Model {
	if err != nil {
		m.fail(err)
		return m
	}
	m.out.clear()
	m.out.text = text
	return m
}

// Armed returns the key waiting for a direction, if any.
func (m Model) Armed() (keyboard.Key, bool) { return m.armed, m.hasArmed }

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) { return m.out.text, m.out.isErr }

// layout splits the height between the document, the keyboard and the
// status line.
func (m *Model) layout() {
	h := m.height - m.keyboardHeight() - 1
	m.viewport.Width = m.width
	m.viewport.Height = max(h, 0)
}

func (m Model) keyboardHeight() int {
	if m.kb.Hidden() {
		return 0
	}
	return len(m.kb.Rows())
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCaret scrolls the viewport so the caret cell is visible.
func (m *Model) followCaret() {
	caret := m.ed.Caret()
	if h := m.viewport.Height; h > 0 {
		y := m.viewport.YOffset
		switch {
		case caret.Line < y:
			m.viewport.SetYOffset(caret.Line)
		case caret.Line >= y+h:
			m.viewport.SetYOffset(caret.Line - h + 1)
		}
	}

	if w := m.contentWidth(); w > 0 {
		before, _ := m.view.CaretParts()
		cell := cellWidth(before)
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
		}
	}
	m.rebuildContent()
}

func (m Model) contentWidth() int {
	return m.viewport.Width - m.gutterWidth()
}

// CaretPosition returns the caret's screen cell relative to the top-left
// corner of the document area.
func (m Model) CaretPosition() (x, y int) {
	before, _ := m.view.CaretParts()
	return m.gutterWidth() + cellWidth(before) - m.xOffset, m.ed.Caret().Line - m.viewport.YOffset
}
