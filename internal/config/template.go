package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iw2rmb/poke/internal/log"
)

// DefaultConfigTemplate returns the default config as YAML with comments.
func DefaultConfigTemplate() string {
	return `# poke configuration

editor:
  indent_unit: "  "        # inserted by smart space and smart newline
  word_class: ascii        # "ascii" ([A-Za-z0-9_]) or "unicode" (any letter or digit)

abbrev:
  self_closing_style: xhtml  # "html" (<br>), "xhtml" (<br />) or "xml" (<br/>)
  # snippets:
  #   fn: "function ${1:name}() {\n  ${2}\n}"

keyboard:
  # dispatch_style: eight_way  # force one style onto every key: "cross", "diagonal" or "eight_way"
  sym_layout: poke43         # "poke43" or "textastic"
  lang_layout: en_us_qwerty  # "en_us_qwerty" or "bg_bg_phonetic"
  show_debounce: 100ms
  # layouts_file: ~/.config/poke/layouts.yaml
  hidden: false

log:
  debug: false
  path: poke-debug.log
  level: debug

ui:
  show_line_numbers: true
`
}

// WriteDefaultConfig creates a config file at configPath with default
// settings and comments, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
