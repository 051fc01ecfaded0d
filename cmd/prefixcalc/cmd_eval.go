// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/prefixcalc"
	"gitlab.com/fisherprime/prefixcalc/bench"
)

func newEvalCmd() *cobra.Command {
	var variant string
	var file string

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate one program and print its value",
		Long: `Evaluate one program and print its value.

A failed parse prints 0, indistinguishable from a computed 0.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var program string
			switch {
			case file != "":
				var err error
				if program, err = bench.LoadProgram(file); err != nil {
					return err
				}
			case len(args) == 1:
				program = args[0]
			default:
				return fmt.Errorf("expected an expression argument or --file")
			}

			var parser prefixcalc.Parser
			switch variant {
			case "panic":
				parser = prefixcalc.NewPanic()
			case "result":
				parser = prefixcalc.NewResult()
			default:
				return fmt.Errorf("unknown variant: %s", variant)
			}

			fmt.Fprintln(cmd.OutOrStdout(), parser.Execute(program))

			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "result", "evaluator variant (panic|result)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the program from the first line of this file")

	return cmd
}
