package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/natcalc/internal/format"
	"github.com/agbru/natcalc/internal/nat"
	"github.com/agbru/natcalc/internal/orchestration"
	"github.com/agbru/natcalc/internal/ui"
)

// CLIProgressReporter renders sweep progress with DisplayProgress.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress calls DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}

// CLIResultPresenter renders division results on the terminal. Operands
// are echoed in the result title.
type CLIResultPresenter struct {
	Operands []string
	// Quiet prints only the quotient and remainder.
	Quiet bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable lists each algorithm's duration and status. It
// pads by hand because the color codes confuse tabwriter.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.DivisionResult, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen, maxDurationLen := len("Algorithm"), len("Duration")
	durations := make([]string, len(results))
	for i, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name()))
		durations[i] = format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			durations[i] = "< 1µs"
		}
		maxDurationLen = max(maxDurationLen, len(durations[i]))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())
	for i, res := range results {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name(), ui.ColorReset(), padRight("", maxNameLen-len(res.Name())),
			ui.ColorYellow(), durations[i], ui.ColorReset(), padRight("", maxDurationLen-len(durations[i])),
			status)
	}
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentDivision shows the quotient and remainder of result.
func (p CLIResultPresenter) PresentDivision(result orchestration.DivisionResult, verbose bool, out io.Writer) {
	res := DivisionToResult(result, p.Operands)
	if p.Quiet {
		DisplayQuietResult(out, res)
		return
	}
	DisplayResult(out, res, verbose)
}

// DivisionToResult converts a division outcome for display.
func DivisionToResult(result orchestration.DivisionResult, operands []string) Result {
	return Result{
		Command:   "divmod",
		Operands:  operands,
		Algorithm: result.Name(),
		Values: []NamedValue{
			{Name: "quotient", Value: nat.ToBig(result.Quotient)},
			{Name: "remainder", Value: nat.ToBig(result.Remainder)},
		},
		Duration: result.Duration,
	}
}
