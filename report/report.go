// Package report renders the start-up banner and the end-of-run summary
// table for a colony run.
//
// Output is styled with lipgloss through a renderer bound to the destination
// writer, so colors are emitted only when the writer is a terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/antcolony/aco"
)

// Summary is the reporting view of a finished run.
type Summary struct {
	Execution       int
	RunID           string
	Cities          int
	Ants            int
	Alpha           float64
	Beta            float64
	EvaporationRate float64
	DepositConstant float64
	Workers         int
	Iterations      int
	BestDistance    float64
	BestIteration   int
	Fallbacks       int
	Elapsed         time.Duration

	// PolishedDistance is the 2-opt refined best length; 0 when not computed.
	PolishedDistance float64
}

// FromStats builds a Summary for the given execution number.
func FromStats(execution int, st aco.Stats) Summary {
	return Summary{
		Execution:       execution,
		RunID:           st.RunID,
		Cities:          st.Cities,
		Ants:            st.Config.Ants,
		Alpha:           st.Config.Alpha,
		Beta:            st.Config.Beta,
		EvaporationRate: st.Config.EvaporationRate,
		DepositConstant: st.Config.DepositConstant,
		Workers:         st.Config.Workers,
		Iterations:      st.Iterations,
		BestDistance:    st.BestDistance,
		BestIteration:   st.BestIteration,
		Fallbacks:       st.Fallbacks,
		Elapsed:         st.Elapsed,
	}
}

type row struct{ label, value string }

// rows returns the label/value pairs of the summary in display order.
func (s Summary) rows() []row {
	best := "n/a"
	if !math.IsInf(s.BestDistance, 0) && !math.IsNaN(s.BestDistance) {
		best = fmt.Sprintf("%.2f", s.BestDistance)
	}
	found := "n/a"
	if s.BestIteration >= 0 && s.Iterations > 0 {
		found = fmt.Sprintf("%d", s.BestIteration+1)
	}

	rows := []row{
		{"Execution", fmt.Sprintf("%d", s.Execution)},
		{"Run ID", s.RunID},
		{"Cities", fmt.Sprintf("%d", s.Cities)},
		{"Evaporation rate", fmt.Sprintf("%.2f", s.EvaporationRate)},
		{"Ants", fmt.Sprintf("%d", s.Ants)},
		{"Alpha (pheromone)", fmt.Sprintf("%.2f", s.Alpha)},
		{"Beta (heuristic)", fmt.Sprintf("%.2f", s.Beta)},
		{"Deposit constant", fmt.Sprintf("%g", s.DepositConstant)},
		{"Iterations", fmt.Sprintf("%d", s.Iterations)},
		{"Best distance", best},
		{"Found at iteration", found},
		{"Uniform fallbacks", fmt.Sprintf("%d", s.Fallbacks)},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	}
	if s.PolishedDistance > 0 {
		rows = append(rows, row{"After 2-opt", fmt.Sprintf("%.2f", s.PolishedDistance)})
	}

	return rows
}

// Render writes the summary table to w.
func Render(w io.Writer, s Summary) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	label := r.NewStyle().Width(20).Foreground(lipgloss.Color("241"))
	value := r.NewStyle().Bold(true)
	box := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	lines := []string{title.Render("RUN RESULTS"), ""}
	for _, rw := range s.rows() {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(rw.label+":"), value.Render(rw.value)))
	}

	_, err := fmt.Fprintln(w, box.Render(strings.Join(lines, "\n")))
	return err
}

// Banner writes the start-up configuration block to w. interactive adds the
// key hint shown by the terminal viewer.
func Banner(w io.Writer, cfg aco.Config, cities int, interactive bool) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dim := r.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(title.Render("ANT COLONY OPTIMIZATION - TRAVELLING SALESMAN"))
	b.WriteString("\nSettings:\n")
	fmt.Fprintf(&b, " - Cities:           %d\n", cities)
	fmt.Fprintf(&b, " - Ants:             %d\n", cfg.Ants)
	fmt.Fprintf(&b, " - Evaporation rate: %g\n", cfg.EvaporationRate)
	fmt.Fprintf(&b, " - Alpha (pheromone): %g\n", cfg.Alpha)
	fmt.Fprintf(&b, " - Beta (heuristic):  %g\n", cfg.Beta)
	if interactive {
		b.WriteString(dim.Render("Press ESC or q to finish and print the results"))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
