package cli

import (
	"fmt"
	"io"
	"math/big"
	"runtime"
	"strings"

	"github.com/agbru/natcalc/internal/config"
	"github.com/agbru/natcalc/internal/format"
	"github.com/agbru/natcalc/internal/nat"
	"github.com/agbru/natcalc/internal/orchestration"
	"github.com/agbru/natcalc/internal/sysmon"
	"github.com/agbru/natcalc/internal/ui"
)

// PrintExecutionConfig shows the command, its limits, the host and the
// kernel crossovers in effect. It is printed in verbose mode.
func PrintExecutionConfig(cfg config.AppConfig, host sysmon.Host, out io.Writer) {
	th := cfg.Thresholds()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Running %s%s %s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Command, strings.Join(cfg.Args, " "), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	cpu := host.CPUModel
	if cpu == "" {
		cpu = "unknown CPU"
	}
	fmt.Fprintf(out, "Environment: %s%s%s, %s%d%s logical processors, %s%s%s RAM, Go %s%s%s, %d-bit words.\n",
		ui.ColorCyan(), cpu, ui.ColorReset(),
		ui.ColorCyan(), host.LogicalCores, ui.ColorReset(),
		ui.ColorCyan(), format.FormatBytes(host.TotalMemory), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(), nat.W)
	if len(host.Features) > 0 {
		fmt.Fprintf(out, "CPU features: %s.\n", strings.Join(host.Features, ", "))
	}
	fmt.Fprintf(out, "Thresholds (words): dc=%s%d%s barrett=%s%d%s barrett-balance=%s%d%s inv-newton=%s%d%s karatsuba=%s%d%s, algorithm %s%s%s.\n",
		ui.ColorCyan(), th.DivDCThreshold, ui.ColorReset(),
		ui.ColorCyan(), th.DivMU, ui.ColorReset(),
		ui.ColorCyan(), th.DivMUPI, ui.ColorReset(),
		ui.ColorCyan(), th.InvNewton, ui.ColorReset(),
		ui.ColorCyan(), th.Karatsuba, ui.ColorReset(),
		ui.ColorGreen(), cfg.Algo, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// SweepToResult converts a range sweep for display.
func SweepToResult(res orchestration.SweepResult, operands []string) Result {
	return Result{
		Command:  "primes",
		Operands: operands,
		Values: []NamedValue{
			{Name: "count", Value: new(big.Int).SetUint64(res.Count)},
			{Name: "largest", Value: new(big.Int).SetUint64(res.Largest)},
		},
		Duration: res.Duration,
	}
}

// DisplaySweepRate writes the sweep throughput.
func DisplaySweepRate(out io.Writer, res orchestration.SweepResult) {
	fmt.Fprintf(out, "  %s %s tested at %s\n", ui.CurrentStyles().Label.Render("rate:"),
		format.FormatNumberString(fmt.Sprint(res.Tested)), format.FormatRate(res.Tested, res.Duration))
}
