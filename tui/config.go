package tui

import (
	"github.com/iw2rmb/poke/editor"
	"github.com/iw2rmb/poke/keyboard"
)

// Config configures the host Model.
type Config struct {
	// Initial text for the editor. Overrides Editor.Text.
	Text string

	Editor   editor.Config
	Keyboard keyboard.Options

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// Zero value means DefaultKeyMap.
	KeyMap KeyMap

	// Optional. Paste and copy do nothing without it.
	Clipboard Clipboard
}
