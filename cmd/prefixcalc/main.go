// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/prefixcalc"
)

// appLogger is shared by every subcommand so --verbose reaches the bench &
// crosscheck debug output too.
var appLogger = logrus.New()

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "prefixcalc",
		Short: "Evaluate prefix S-expression arithmetic two ways",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				appLogger.SetLevel(logrus.DebugLevel)
			}
			prefixcalc.SetLogger(appLogger)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newCrosscheckCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
