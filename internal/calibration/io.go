package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/natcalc/internal/format"
	"github.com/agbru/natcalc/internal/ui"
)

// crossoverOrder fixes the print order of the measurement tables.
var crossoverOrder = []string{CrossoverKaratsuba, CrossoverDC, CrossoverBarrettBalance, CrossoverBarrett, CrossoverInvNewton}

// PrintResults writes one table per crossover with the chosen size
// highlighted, followed by the profile summary.
func PrintResults(out io.Writer, res Result) {
	chosen := map[string]int{
		CrossoverDC:             res.Profile.DCThreshold,
		CrossoverBarrett:        res.Profile.BarrettThreshold,
		CrossoverBarrettBalance: res.Profile.BarrettBalanceThreshold,
		CrossoverInvNewton:      res.Profile.InvNewtonThreshold,
		CrossoverKaratsuba:      res.Profile.KaratsubaThreshold,
	}
	for _, name := range crossoverOrder {
		ms := res.Measurements[name]
		if len(ms) == 0 {
			continue
		}
		printCrossoverTable(out, name, ms, chosen[name])
	}
	printCalibrationOutput(out, res.Profile)
}

func printCrossoverTable(out io.Writer, name string, ms []Measurement, best int) {
	fmt.Fprintf(out, "\n--- %s crossover ---\n", name)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sWords%s\t%sBelow%s\t%sAbove%s\t\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t%s\t%s\t\n", strings.Repeat("─", 6), strings.Repeat("─", 10), strings.Repeat("─", 10))
	for _, m := range ms {
		above := format.FormatExecutionDuration(m.Candidate)
		if m.CandidateWins() {
			above = ui.ColorGreen() + above + ui.ColorReset()
		}
		highlight := ""
		if m.Words == best {
			highlight = fmt.Sprintf(" %s(chosen)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%d%s\t%s\t%s\t%s\n",
			ui.ColorCyan(), m.Words, ui.ColorReset(), format.FormatExecutionDuration(m.Baseline), above, highlight)
	}
	tw.Flush()
}

func printCalibrationOutput(out io.Writer, p *CalibrationProfile) {
	fmt.Fprintf(out, "\n%sCalibration%s (%s): dc=%s%d%s barrett=%s%d%s barrett-balance=%s%d%s inv-newton=%s%d%s karatsuba=%s%d%s words\n",
		ui.ColorGreen(), ui.ColorReset(), p.CalibrationTime,
		ui.ColorYellow(), p.DCThreshold, ui.ColorReset(),
		ui.ColorYellow(), p.BarrettThreshold, ui.ColorReset(),
		ui.ColorYellow(), p.BarrettBalanceThreshold, ui.ColorReset(),
		ui.ColorYellow(), p.InvNewtonThreshold, ui.ColorReset(),
		ui.ColorYellow(), p.KaratsubaThreshold, ui.ColorReset())
}
