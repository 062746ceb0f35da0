package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsim"
)

// NewStatesCmd prints the canonical basis states and their NOT images.
func NewStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "Print the canonical qubit states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			rows := []struct {
				title string
				state qsim.QuantumState
			}{
				{"Zero qubit", qsim.Zero()},
				{"One qubit", qsim.One()},
				{"Zero qubit with NOT gate", qsim.Not(qsim.Zero())},
				{"One qubit with NOT gate", qsim.Not(qsim.One())},
			}

			for _, row := range rows {
				fmt.Fprintf(out, "%s\n  %v\n", row.title, row.state)
			}

			return nil
		},
	}
}
