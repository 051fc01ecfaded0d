// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/prefixcalc/bench"
)

func newCrosscheckCmd() *cobra.Command {
	var (
		count   int
		seed    int64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Verify both evaluators agree over a generated corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			programs := bench.Generate(seed, count)

			cfg := &bench.Config{Logger: appLogger, Out: cmd.OutOrStdout()}
			mismatches, err := bench.Crosscheck(cfg, programs, workers)
			for _, mismatch := range mismatches {
				fmt.Fprintf(cmd.OutOrStdout(), "%q: panic=%d result=%d\n",
					mismatch.Program, mismatch.Panic, mismatch.Result)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d programs agree\n", len(programs))

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1000, "number of generated programs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "corpus generation seed")
	cmd.Flags().IntVar(&workers, "workers", 4, "worker pool size")

	return cmd
}
