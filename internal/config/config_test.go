package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/poke/abbrev"
	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/keyboard"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults_Valid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Editor.IndentUnit = "ab"
	cfg.Editor.WordClass = "klingon"
	cfg.Abbrev.SelfClosingStyle = "sgml"
	cfg.Keyboard.DispatchStyle = "spiral"
	cfg.Keyboard.ShowDebounce = -time.Second
	cfg.Keyboard.SymLayout = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"editor.indent_unit",
		"editor.word_class",
		"abbrev.self_closing_style",
		"keyboard.dispatch_style",
		"keyboard.show_debounce",
		"keyboard.sym_layout",
	} {
		require.Contains(t, err.Error(), want)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
editor:
  indent_unit: "\t"
  word_class: unicode
abbrev:
  self_closing_style: xml
  snippets:
    fn: "function ${1:name}() {}"
keyboard:
  dispatch_style: cross
  show_debounce: 250ms
ui:
  show_line_numbers: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "\t", cfg.Editor.IndentUnit)
	require.Equal(t, "unicode", cfg.Editor.WordClass)
	require.Equal(t, "xml", cfg.Abbrev.SelfClosingStyle)
	require.Equal(t, "function ${1:name}() {}", cfg.Abbrev.Snippets["fn"])
	require.Equal(t, "cross", cfg.Keyboard.DispatchStyle)
	require.Equal(t, 250*time.Millisecond, cfg.Keyboard.ShowDebounce)
	require.False(t, cfg.UI.ShowLineNumbers)

	// Unset keys keep their defaults.
	require.Equal(t, keyboard.LayoutPoke43, cfg.Keyboard.SymLayout)
	require.Equal(t, "poke-debug.log", cfg.Log.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "editor:\n  word_class: ascii\n")
	t.Setenv("POKE_EDITOR_WORD_CLASS", "unicode")
	t.Setenv("POKE_LOG_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "unicode", cfg.Editor.WordClass)
	require.True(t, cfg.Log.Debug)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "editor:\n  word_class: klingon\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "editor.word_class")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := NewLoader()
	cfg, err := l.Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults().Editor, cfg.Editor)
	require.Equal(t, Defaults().Keyboard, cfg.Keyboard)
	require.Empty(t, l.Path())
}

func TestWriteDefaultConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	d := Defaults()
	require.Equal(t, d.Editor, cfg.Editor)
	require.Equal(t, d.Keyboard, cfg.Keyboard)
	require.Equal(t, d.Log, cfg.Log)
	require.Equal(t, d.UI, cfg.UI)
	require.Equal(t, d.Abbrev.SelfClosingStyle, cfg.Abbrev.SelfClosingStyle)
}

func TestConfig_Mapping(t *testing.T) {
	cfg := Defaults()
	cfg.Editor.WordClass = "unicode"
	cfg.Editor.IndentUnit = "    "
	cfg.Abbrev.SelfClosingStyle = "html"
	cfg.Abbrev.Snippets = map[string]string{"x": "y"}
	cfg.Keyboard.DispatchStyle = "diagonal"

	require.Equal(t, buffer.Options{WordClass: buffer.WordUnicode}, cfg.BufferOptions())

	opt := cfg.AbbrevOptions()
	require.Equal(t, "    ", opt.Indent)
	require.Equal(t, abbrev.StyleHTML, opt.SelfClosing)
	require.Equal(t, "y", opt.Snippets["x"])

	require.Equal(t, keyboard.DispatchDiagonal, cfg.DispatchStyle())
	require.NotNil(t, cfg.DispatchOverride())
	require.Equal(t, keyboard.DispatchDiagonal, *cfg.DispatchOverride())

	require.Nil(t, Defaults().DispatchOverride(), "keys keep their role styles by default")
}

func TestWatch_Reloads(t *testing.T) {
	path := writeConfig(t, "editor:\n  word_class: ascii\n")
	l := NewLoader()
	_, err := l.Load(path)
	require.NoError(t, err)

	got := make(chan Config, 4)
	l.Watch(func(cfg Config, err error) {
		if err == nil {
			got <- cfg
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("editor:\n  word_class: unicode\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Editor.WordClass == "unicode" {
				return
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}
