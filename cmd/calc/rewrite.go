package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func newRewriteCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite [expression...]",
		Short: "Print expressions with their function calls replaced by values",
		Long: `rewrite substitutes the value of every function call it can evaluate
and prints the remaining text. Calls that fail are left as written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.options()
			if err != nil {
				return err
			}
			ev := calc.New(opts...)
			srcs, err := inputs(cmd, f.inname, args)
			if err != nil {
				return err
			}
			for _, src := range srcs {
				s, err := ev.Rewrite(src)
				fmt.Fprintln(cmd.OutOrStdout(), s)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
				}
			}
			return nil
		},
	}
}
