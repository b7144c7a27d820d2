package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/poke/internal/config"
	"github.com/iw2rmb/poke/internal/log"
	"github.com/iw2rmb/poke/tui"
)

// configReloadedMsg carries a config re-read after the file changed.
type configReloadedMsg struct {
	cfg config.Config
}

// app wraps the editor model with quitting, saving and config reloads.
type app struct {
	editor tui.Model
	path   string
}

func newApp(m tui.Model, path string) app {
	return app{editor: m, path: path}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return a, tea.Quit
		case "ctrl+s":
			a.editor = a.editor.Notify(a.save())
			return a, nil
		}
	case configReloadedMsg:
		a.editor = a.editor.SetShowLineNums(msg.cfg.UI.ShowLineNumbers)
		if level, ok := log.ParseLevel(msg.cfg.Log.Level); ok {
			log.SetMinLevel(level)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

// save writes the document to the file poke was opened with.
func (a app) save() (string, error) {
	if a.path == "" {
		return "", fmt.Errorf("save: no file name (run poke <file>)")
	}
	content := a.editor.Editor().Content()
	if err := os.WriteFile(a.path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	log.Info(log.CatUI, "Saved", "path", a.path, "bytes", len(content))
	return fmt.Sprintf("saved %s", a.path), nil
}
