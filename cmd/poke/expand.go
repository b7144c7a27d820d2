package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/poke/abbrev"
	"github.com/iw2rmb/poke/field"
)

func newExpandCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <abbreviation>",
		Short: "Print the expansion of an abbreviation",
		Long: `Expand an abbreviation such as ul>li*3 and print the result with its
fields marked, then the field-free text and every field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := o.cfg.AbbrevOptions()
			opt.Field = field.CreateToken
			marked, err := abbrev.Expand(args[0], opt)
			if err != nil {
				return err
			}
			parsed, err := field.Parse(marked)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, marked)
			fmt.Fprintln(out, "---")
			fmt.Fprintln(out, parsed.Text)
			for _, f := range parsed.Fields {
				fmt.Fprintf(out, "field %d at %d: %q\n", f.Index, f.Location, f.Placeholder)
			}
			return nil
		},
	}
}
