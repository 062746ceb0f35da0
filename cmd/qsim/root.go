package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for qsim.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qsim",
		Short: "Single-qubit state, gate and measurement simulator",
		Long: `qsim applies fixed unitary gates to single-qubit states and samples
measurements from them, reporting observed frequencies next to the
probabilities predicted by the state's amplitudes.

Defaults for trials, workers and seed are read from QSIM_TRIALS,
QSIM_WORKERS and QSIM_SEED.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewStatesCmd())
	cmd.AddCommand(NewGatesCmd())
	cmd.AddCommand(NewSimulateCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
