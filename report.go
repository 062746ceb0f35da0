package qsim

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ff9e64"))

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bb9af7"))

	reportDeviationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f7768e"))
)

/*
Report compares the observed outcome frequencies of a Tally with the
theoretical probabilities implied by the state that was measured.

The source state is supplied by the caller and is assumed to be the state
the tally was sampled from. Comparing a tally against a different reference
state is allowed but is the caller's responsibility.
*/
type Report struct {
	tally       Tally
	source      QuantumState
	observed    [2]float64
	theoretical [2]float64
}

/*
NewReport derives per-bit observed frequencies and theoretical
probabilities. An empty tally reports zero observed frequencies instead of
dividing by zero.
*/
func NewReport(tally Tally, source QuantumState) Report {
	report := Report{
		tally:  tally,
		source: source,
	}

	report.theoretical[BitOne] = source.Probability(BitOne)
	report.theoretical[BitZero] = 1 - report.theoretical[BitOne]

	if total := tally.Total(); total > 0 {
		for _, b := range []Bit{BitZero, BitOne} {
			report.observed[b] = float64(tally.Count(b)) / float64(total)
		}
	}

	return report
}

func (report Report) Tally() Tally {
	return report.tally
}

func (report Report) Source() QuantumState {
	return report.source
}

func (report Report) Trials() uint64 {
	return report.tally.Total()
}

func (report Report) ObservedFrequency(b Bit) float64 {
	return report.observed[b&1]
}

func (report Report) TheoreticalProbability(b Bit) float64 {
	return report.theoretical[b&1]
}

// Deviation is |observed - theoretical| for b.
func (report Report) Deviation(b Bit) float64 {
	return math.Abs(report.ObservedFrequency(b) - report.TheoreticalProbability(b))
}

// Within reports whether both bits deviate from theory by at most tolerance.
// An empty report is never within tolerance, since nothing was observed.
func (report Report) Within(tolerance float64) bool {
	if report.Trials() == 0 {
		return false
	}

	return report.Deviation(BitZero) <= tolerance && report.Deviation(BitOne) <= tolerance
}

func (report Report) row(b Bit) string {
	return fmt.Sprintf(
		"%d observed %.2f%% theoretical %.2f%%",
		report.tally.Count(b),
		report.ObservedFrequency(b)*100,
		report.TheoreticalProbability(b)*100,
	)
}

func (report Report) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Simulation report for %v\n", report.source)
	fmt.Fprintf(&sb, "  trials : %d\n", report.Trials())
	fmt.Fprintf(&sb, "  0      : %s\n", report.row(BitZero))
	fmt.Fprintf(&sb, "  1      : %s", report.row(BitOne))

	return sb.String()
}

// Render draws the report in a bordered box for terminal output.
func (report Report) Render() string {
	lines := []string{
		reportTitleStyle.Render("Simulation report"),
		reportLabelStyle.Render("source") + " " + report.source.String(),
		reportLabelStyle.Render("trials") + " " + fmt.Sprintf("%d", report.Trials()),
	}

	for _, b := range []Bit{BitZero, BitOne} {
		line := reportLabelStyle.Render(fmt.Sprintf("%-6s", b.String())) + " " + report.row(b)
		if report.Trials() > 0 {
			line += " " + reportDeviationStyle.Render(fmt.Sprintf("(Δ %.4f)", report.Deviation(b)))
		}
		lines = append(lines, line)
	}

	return reportBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
