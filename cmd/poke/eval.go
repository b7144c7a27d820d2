package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/poke/editor"
)

func newEvalCmd(o *options) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "eval <file|->",
		Short: "Evaluate a Lua script the way the editor does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg := o.editorConfig(src)
			cfg.EvalTimeout = timeout
			ed := editor.New(cfg, editor.WithOutput(editor.OutputFunc(func(value, _ string) {
				fmt.Fprintln(out, value)
			})))
			return ed.EvalScript()
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", editor.DefaultEvalTimeout, "evaluation time limit")
	return cmd
}

// readSource reads path, or in when path is "-".
func readSource(in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	return string(data), nil
}
