package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/theapemachine/qsim"
)

var gateTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#9ece6a"))

// NewGatesCmd lists every gate with its matrix.
func NewGatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the available gates and their matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, g := range qsim.Gates() {
				fmt.Fprintln(out, gateTitleStyle.Render(g.String()))
				fmt.Fprintln(out, g.Matrix())
			}

			return nil
		},
	}
}
