package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/poke"
	"github.com/iw2rmb/poke/editor"
	"github.com/iw2rmb/poke/internal/config"
	"github.com/iw2rmb/poke/internal/log"
	"github.com/iw2rmb/poke/keyboard"
	"github.com/iw2rmb/poke/tui"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin so the
	// OSC 11 reply does not leak into the input stream.
	_ = lipgloss.HasDarkBackground()
}

// options holds the state shared by every subcommand.
type options struct {
	cfgFile  string
	loader   *config.Loader
	cfg      config.Config
	closeLog func()
}

func newRootCmd() *cobra.Command {
	o := &options{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:          "poke [file]",
		Short:        "A text editor driven by a swipe keyboard",
		Long:         `poke edits text through an on-screen swipe keyboard with smart pairing, abbreviation expansion and script evaluation.`,
		Version:      poke.BuildString(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.closeLog != nil {
				o.closeLog()
			}
		},
		RunE: o.runApp,
	}

	root.PersistentFlags().StringVarP(&o.cfgFile, "config", "c", "",
		"config file (default: ~/.config/poke/config.yaml)")
	root.PersistentFlags().Bool("debug", false,
		"write a debug log (also POKE_DEBUG)")

	v := o.loader.Viper()
	_ = v.BindPFlag("log.debug", root.PersistentFlags().Lookup("debug"))
	_ = v.BindEnv("log.debug", "POKE_LOG_DEBUG", "POKE_DEBUG")

	root.AddCommand(newExpandCmd(o), newEvalCmd(o), newConfigCmd(o))
	return root
}

// load reads the config and starts the debug log when enabled.
func (o *options) load() error {
	cfg, err := o.loader.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if !cfg.Log.Debug {
		return nil
	}
	closeLog, err := log.Init(cfg.Log.Path)
	if err != nil {
		return err
	}
	o.closeLog = closeLog
	if level, ok := log.ParseLevel(cfg.Log.Level); ok {
		log.SetMinLevel(level)
	}
	log.Info(log.CatConfig, "Starting poke", "version", poke.Version(), "config", o.loader.Path())
	return nil
}

func (o *options) editorConfig(text string) editor.Config {
	return editor.Config{
		Text:       text,
		IndentUnit: o.cfg.Editor.IndentUnit,
		Buffer:     o.cfg.BufferOptions(),
		Abbrev:     o.cfg.AbbrevOptions(),
	}
}

func (o *options) keyboardOptions() (keyboard.Options, error) {
	kc := o.cfg.Keyboard
	layouts := keyboard.DefaultLayouts()
	if kc.LayoutsFile != "" {
		var err error
		if layouts, err = keyboard.LoadLayoutsFile(kc.LayoutsFile); err != nil {
			return keyboard.Options{}, err
		}
	}
	return keyboard.Options{
		Layouts:      layouts,
		SymLayout:    kc.SymLayout,
		LangLayout:   kc.LangLayout,
		ShowDebounce: kc.ShowDebounce,
		Hidden:       kc.Hidden,
		Dispatch:     o.cfg.DispatchOverride(),
	}, nil
}

func (o *options) runApp(cmd *cobra.Command, args []string) error {
	var path, text string
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case errors.Is(err, os.ErrNotExist):
			log.Debug(log.CatUI, "New file", "path", path)
		default:
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	kopt, err := o.keyboardOptions()
	if err != nil {
		return err
	}
	m, err := tui.New(tui.Config{
		Editor:       o.editorConfig(text),
		Keyboard:     kopt,
		ShowLineNums: o.cfg.UI.ShowLineNumbers,
		Style:        tui.DefaultStyle(),
		Clipboard:    tui.SystemClipboard{},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(newApp(m, path), tea.WithAltScreen(), tea.WithMouseCellMotion())
	o.loader.Watch(func(cfg config.Config, err error) {
		if err == nil {
			p.Send(configReloadedMsg{cfg: cfg})
		}
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
