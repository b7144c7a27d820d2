package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/poke/internal/config"
	"github.com/iw2rmb/poke/tui"
)

// run executes the root command with args in an isolated home directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExpandCmd_PrintsMarkedAndParsed(t *testing.T) {
	out, err := run(t, "", "expand", "ul>li*2")
	require.NoError(t, err)

	parts := strings.SplitN(out, "---\n", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "${1}")
	assert.Contains(t, parts[0], "<li>")
	assert.NotContains(t, parts[1], "${")
	assert.Contains(t, parts[1], "field 1 at ")
	assert.Contains(t, parts[1], "field 2 at ")
}

func TestExpandCmd_SyntaxError(t *testing.T) {
	_, err := run(t, "", "expand", "a*0")
	require.Error(t, err)
}

func TestEvalCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte("local x = 6\nreturn x * 7"), 0o600))

	out, err := run(t, "", "eval", path)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestEvalCmd_StdinAndNoResult(t *testing.T) {
	out, err := run(t, "local y = 1", "eval", "-")
	require.NoError(t, err)
	assert.Equal(t, "✓\n", out)
}

func TestEvalCmd_ScriptError(t *testing.T) {
	_, err := run(t, "error('boom')", "eval", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poke", "config.yaml")

	out, err := run(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults().Editor, cfg.Editor)

	_, err = run(t, "", "config", "init", path)
	require.Error(t, err, "existing file must not be overwritten")

	_, err = run(t, "", "config", "init", "--force", path)
	require.NoError(t, err)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  word_class: klingon\n"), 0o600))

	_, err := run(t, "", "--config", path, "expand", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word_class")
}

func newTestApp(t *testing.T, text, path string) app {
	t.Helper()
	m, err := tui.New(tui.Config{Text: text})
	require.NoError(t, err)
	return newApp(m.SetSize(40, 20), path)
}

func TestApp_SaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	a := newTestApp(t, "hello", path)

	next, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	a = next.(app)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	status, isErr := a.editor.Status()
	assert.False(t, isErr)
	assert.Contains(t, status, "saved")
}

func TestApp_SaveWithoutPathReportsError(t *testing.T) {
	a := newTestApp(t, "x", "")

	next, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	_, isErr := next.(app).editor.Status()
	assert.True(t, isErr)
}

func TestApp_QuitAndReload(t *testing.T) {
	a := newTestApp(t, "x", "")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cfg := config.Defaults()
	cfg.UI.ShowLineNumbers = true
	next, _ := a.Update(configReloadedMsg{cfg: cfg})
	assert.True(t, strings.HasPrefix(next.(app).View(), "1 "))
}
