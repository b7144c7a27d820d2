package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/iw2rmb/poke/internal/log"
)

// EnvPrefix prefixes every environment override, e.g. POKE_EDITOR_WORD_CLASS.
const EnvPrefix = "POKE"

// Loader reads configuration through a private viper instance so flags can
// be bound before Load.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader with defaults and env overrides registered.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("editor.indent_unit", d.Editor.IndentUnit)
	v.SetDefault("editor.word_class", d.Editor.WordClass)
	v.SetDefault("abbrev.self_closing_style", d.Abbrev.SelfClosingStyle)
	v.SetDefault("abbrev.snippets", map[string]string{})
	v.SetDefault("keyboard.dispatch_style", d.Keyboard.DispatchStyle)
	v.SetDefault("keyboard.sym_layout", d.Keyboard.SymLayout)
	v.SetDefault("keyboard.lang_layout", d.Keyboard.LangLayout)
	v.SetDefault("keyboard.show_debounce", d.Keyboard.ShowDebounce)
	v.SetDefault("keyboard.layouts_file", d.Keyboard.LayoutsFile)
	v.SetDefault("keyboard.hidden", d.Keyboard.Hidden)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("ui.show_line_numbers", d.UI.ShowLineNumbers)
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper { return l.v }

// Load reads path, or the first config found in ./.poke/config.yaml and
// ~/.config/poke/config.yaml when path is empty. A missing config file is
// not an error; defaults and env overrides still apply.
func (l *Loader) Load(path string) (Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else if _, err := os.Stat(filepath.Join(".poke", "config.yaml")); err == nil {
		l.v.SetConfigFile(filepath.Join(".poke", "config.yaml"))
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "poke"))
		}
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	} else {
		log.Debug(log.CatConfig, "Loaded config", "path", l.v.ConfigFileUsed())
	}

	return l.decode()
}

// Path returns the config file in use, or "".
func (l *Loader) Path() string { return l.v.ConfigFileUsed() }

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Watch calls fn with the re-read config whenever the loaded file is written
// or re-created. fn runs on the watcher goroutine. Watch is a no-op when no
// config file was loaded.
func (l *Loader) Watch(fn func(Config, error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !isReloadEvent(e) {
			return
		}
		log.Info(log.CatConfig, "Config changed", "path", e.Name, "op", e.Op.String())
		cfg, err := l.decode()
		if err != nil {
			log.ErrorErr(log.CatConfig, "Reload failed", err, "path", e.Name)
		}
		fn(cfg, err)
	})
	l.v.WatchConfig()
}

func isReloadEvent(e fsnotify.Event) bool {
	return e.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// Load reads configuration with a fresh Loader.
func Load(path string) (Config, error) {
	return NewLoader().Load(path)
}
