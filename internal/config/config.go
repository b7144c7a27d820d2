// Package config provides configuration types and defaults for poke.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iw2rmb/poke/abbrev"
	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/internal/grapheme"
	"github.com/iw2rmb/poke/keyboard"
)

// Config holds all poke configuration.
type Config struct {
	Editor   EditorConfig   `mapstructure:"editor"`
	Abbrev   AbbrevConfig   `mapstructure:"abbrev"`
	Keyboard KeyboardConfig `mapstructure:"keyboard"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// EditorConfig holds edit-behaviour settings.
type EditorConfig struct {
	IndentUnit string `mapstructure:"indent_unit"` // inserted by smart space/newline; spaces or tabs
	WordClass  string `mapstructure:"word_class"`  // "ascii" (default) or "unicode"
}

// AbbrevConfig holds abbreviation expansion settings.
type AbbrevConfig struct {
	SelfClosingStyle string            `mapstructure:"self_closing_style"` // "html", "xhtml" (default) or "xml"
	Snippets         map[string]string `mapstructure:"snippets"`
}

// KeyboardConfig holds on-screen keyboard settings.
type KeyboardConfig struct {
	DispatchStyle string        `mapstructure:"dispatch_style"` // "cross", "diagonal", "eight_way"; empty keeps each key's own
	SymLayout     string        `mapstructure:"sym_layout"`
	LangLayout    string        `mapstructure:"lang_layout"`
	ShowDebounce  time.Duration `mapstructure:"show_debounce"`
	LayoutsFile   string        `mapstructure:"layouts_file"` // optional YAML with extra layouts
	Hidden        bool          `mapstructure:"hidden"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			IndentUnit: "  ",
			WordClass:  grapheme.ClassASCII.String(),
		},
		Abbrev: AbbrevConfig{
			SelfClosingStyle: abbrev.StyleXHTML.String(),
		},
		Keyboard: KeyboardConfig{
			SymLayout:    keyboard.LayoutPoke43,
			LangLayout:   keyboard.LayoutEnUsQwerty,
			ShowDebounce: keyboard.DefaultShowDebounce,
		},
		Log: LogConfig{
			Path:  "poke-debug.log",
			Level: "debug",
		},
		UI: UIConfig{
			ShowLineNumbers: true,
		},
	}
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	var errs []error

	if c.Editor.IndentUnit == "" || strings.Trim(c.Editor.IndentUnit, " \t") != "" {
		errs = append(errs, fmt.Errorf("editor.indent_unit: must be non-empty spaces or tabs, got %q", c.Editor.IndentUnit))
	}
	if _, ok := grapheme.ParseClass(c.Editor.WordClass); !ok {
		errs = append(errs, fmt.Errorf("editor.word_class: unknown class %q", c.Editor.WordClass))
	}
	if _, ok := abbrev.ParseStyle(c.Abbrev.SelfClosingStyle); !ok {
		errs = append(errs, fmt.Errorf("abbrev.self_closing_style: unknown style %q", c.Abbrev.SelfClosingStyle))
	}
	if _, ok := keyboard.ParseDispatchStyle(c.Keyboard.DispatchStyle); !ok && c.Keyboard.DispatchStyle != "" {
		errs = append(errs, fmt.Errorf("keyboard.dispatch_style: unknown style %q", c.Keyboard.DispatchStyle))
	}
	if c.Keyboard.ShowDebounce < 0 {
		errs = append(errs, fmt.Errorf("keyboard.show_debounce: must not be negative, got %s", c.Keyboard.ShowDebounce))
	}
	// Layout names are checked after the layouts file is merged in.
	if c.Keyboard.SymLayout == "" {
		errs = append(errs, errors.New("keyboard.sym_layout: required"))
	}
	if c.Keyboard.LangLayout == "" {
		errs = append(errs, errors.New("keyboard.lang_layout: required"))
	}

	return errors.Join(errs...)
}

// BufferOptions maps the editor section onto buffer options.
func (c Config) BufferOptions() buffer.Options {
	class, _ := grapheme.ParseClass(c.Editor.WordClass)
	return buffer.Options{WordClass: class}
}

// AbbrevOptions maps the abbrev section onto expansion options. The field
// token and indent are filled in by the editor.
func (c Config) AbbrevOptions() abbrev.Options {
	style, _ := abbrev.ParseStyle(c.Abbrev.SelfClosingStyle)
	return abbrev.Options{
		Indent:      c.Editor.IndentUnit,
		SelfClosing: style,
		Snippets:    c.Abbrev.Snippets,
	}
}

// DispatchStyle returns the parsed keyboard dispatch style.
func (c Config) DispatchStyle() keyboard.DispatchStyle {
	s, _ := keyboard.ParseDispatchStyle(c.Keyboard.DispatchStyle)
	return s
}

// DispatchOverride returns the style forced onto every key, or nil when
// keys keep the style of their role.
func (c Config) DispatchOverride() *keyboard.DispatchStyle {
	if c.Keyboard.DispatchStyle == "" {
		return nil
	}
	s := c.DispatchStyle()
	return &s
}
