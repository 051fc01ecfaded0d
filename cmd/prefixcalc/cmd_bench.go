// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/prefixcalc/bench"
)

func newBenchCmd() *cobra.Command {
	var (
		okInput  string
		errInput string
		csvPath  string
		label    string
	)

	cmd := &cobra.Command{
		Use:   "bench <iterations>",
		Short: "Measure both evaluators over repeated invocation",
		Long: `Measure both evaluators over repeated invocation.

Each evaluator runs against a valid and an invalid program for the given
iteration count; process user time per scenario is printed and appended to
the CSV report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("iterations must be a number: %w", err)
			}

			okProgram, err := bench.LoadProgram(okInput)
			if err != nil {
				return err
			}
			errProgram, err := bench.LoadProgram(errInput)
			if err != nil {
				return err
			}

			cfg := &bench.Config{
				Logger:     appLogger,
				Out:        cmd.OutOrStdout(),
				Label:      label,
				CSVPath:    csvPath,
				Iterations: iterations,
			}
			_, err = bench.Run(cfg, bench.DefaultScenarios(okProgram, errProgram))

			return err
		},
	}

	cmd.Flags().StringVar(&okInput, "ok-input", "input.ok", "file holding the valid program")
	cmd.Flags().StringVar(&errInput, "err-input", "input.err", "file holding the invalid program")
	cmd.Flags().StringVar(&csvPath, "csv", bench.DefaultCSVPath, "CSV report to append to")
	cmd.Flags().StringVar(&label, "label", "", "report label (defaults to the Go runtime version)")

	return cmd
}
