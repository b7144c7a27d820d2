// Package tui hosts the poke editor and on-screen keyboard in a Bubble Tea
// program.
//
// The package plays both external roles of the editing core: it renders the
// document from the editor's line notifications (through an editor.View) and
// it turns terminal keys into editor commands and keyboard gestures.
package tui
