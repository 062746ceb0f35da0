package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qsim"
)

var inputStates = map[string]func() qsim.QuantumState{
	"zero":        qsim.Zero,
	"one":         qsim.One,
	"phased":      qsim.PhasedOne,
	"quarter":     qsim.QuarterTurn,
	"backquarter": qsim.BackQuarterTurn,
}

func parseInput(name string) (qsim.QuantumState, error) {
	ctor, ok := inputStates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return qsim.QuantumState{}, fmt.Errorf("unknown input state %q (want zero, one, phased, quarter or backquarter)", name)
	}
	return ctor(), nil
}

// NewSimulateCmd builds a state from --input and --gate, runs the
// measurement simulation and prints the report.
func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Measure a gated qubit many times and report the frequencies",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}

	cmd.Flags().StringP("input", "i", "zero", "Input state (zero, one, phased, quarter, backquarter)")
	cmd.Flags().StringSliceP("gate", "g", nil, "Gates to apply in order (NOT, FLIP, PHASE, ROTATE, SUPERPOSITION or X, Y, Z, H)")
	cmd.Flags().Uint64P("trials", "n", 0, "Number of trials (default from QSIM_TRIALS)")
	cmd.Flags().IntP("workers", "w", 0, "Parallel workers (default from QSIM_WORKERS)")
	cmd.Flags().Uint64P("seed", "s", 0, "Random seed, 0 for time-based (default from QSIM_SEED)")
	cmd.Flags().Bool("plain", false, "Print the report without styling")

	return cmd
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	config, err := qsim.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		if config.Trials, err = flags.GetUint64("trials"); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		if config.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		if config.Seed, err = flags.GetUint64("seed"); err != nil {
			return err
		}
	}

	input, err := flags.GetString("input")
	if err != nil {
		return err
	}

	state, err := parseInput(input)
	if err != nil {
		return err
	}

	gateNames, err := flags.GetStringSlice("gate")
	if err != nil {
		return err
	}
	for _, name := range gateNames {
		g, err := qsim.ParseGate(name)
		if err != nil {
			return err
		}
		state = g.Apply(state)
	}

	errnie.Info("simulate - input %s, gates %v, trials %d, workers %d", input, gateNames, config.Trials, config.Workers)

	engine := qsim.NewEngine(config)
	tally, err := engine.RunParallel(cmd.Context(), state, config.Trials, nil)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	report := qsim.NewReport(tally, state)

	out := cmd.OutOrStdout()
	plain, err := flags.GetBool("plain")
	if err != nil {
		return err
	}

	if plain {
		fmt.Fprintln(out, report.String())
	} else {
		fmt.Fprintln(out, report.Render())
	}

	if !report.Within(config.ReportTolerance) {
		errnie.Warn("simulate - observed frequencies deviate from theory by more than %g", config.ReportTolerance)
	}

	return nil
}
