package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the host key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding

	Backspace, Delete         key.Binding
	WordBackspace, WordDelete key.Binding
	Enter                     key.Binding

	Expand key.Binding
	Eval   key.Binding

	Copy, Paste key.Binding

	HideKeyboard   key.Binding
	ToggleSymBlock key.Binding
	CycleSymBlock  key.Binding
	ToggleCustom   key.Binding
	CycleLang      key.Binding

	// Cancel drops an armed key.
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:        key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		WordBackspace: key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word left")),
		WordDelete:    key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+d", "delete word right")),
		Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Expand: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "expand")),
		Eval:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "eval")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy line")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		HideKeyboard:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "hide keyboard")),
		ToggleSymBlock: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "symbols")),
		CycleSymBlock:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "next symbols")),
		ToggleCustom:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "custom keys")),
		CycleLang:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "next language")),

		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Expand, km.Eval, km.HideKeyboard, km.CycleLang}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.WordLeft, km.WordRight, km.Home, km.End, km.DocStart, km.DocEnd},
		{km.Backspace, km.Delete, km.WordBackspace, km.WordDelete, km.Enter},
		{km.Expand, km.Eval, km.Copy, km.Paste},
		{km.HideKeyboard, km.ToggleSymBlock, km.CycleSymBlock, km.ToggleCustom, km.CycleLang, km.Cancel},
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0
}
