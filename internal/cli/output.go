// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatValue], [FormatQuietResult].
//
//   - Write* functions write to the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/natcalc/internal/format"
	"github.com/agbru/natcalc/internal/metrics"
	"github.com/agbru/natcalc/internal/ui"
)

// NamedValue is one labelled number of a result, e.g. the quotient.
type NamedValue struct {
	Name  string
	Value *big.Int
}

// Result is the displayable outcome of one command.
type Result struct {
	// Command is the subcommand that produced the result.
	Command string
	// Operands are the operands as typed.
	Operands []string
	// Algorithm names the division algorithm, if one was involved.
	Algorithm string
	// Verdict is "prime", "probable prime" or "composite" for primality
	// checks, else empty.
	Verdict string
	// Values are the numbers produced, in display order.
	Values   []NamedValue
	Duration time.Duration
}

// OutputConfig selects how a result is written.
type OutputConfig struct {
	// OutputFile, when set, also receives the result.
	OutputFile string
	// Quiet prints the bare result only.
	Quiet bool
	// Verbose prints values in full with their sizes.
	Verbose bool
}

// FormatValue renders v in decimal with thousands separators. Unless
// verbose, values longer than TruncationLimit digits keep only their edges.
func FormatValue(v *big.Int, verbose bool) string {
	s := v.String()
	if !verbose {
		if short, cut := format.TruncateDigits(s, TruncationLimit, DisplayEdges); cut {
			return fmt.Sprintf("%s (%s digits, truncated)", short, format.FormatNumberString(fmt.Sprint(len(s))))
		}
	}
	return format.FormatNumberString(s)
}

// DisplayResult writes a styled summary of res.
func DisplayResult(out io.Writer, res Result, verbose bool) {
	st := ui.CurrentStyles()
	title := res.Command
	if len(res.Operands) > 0 {
		title += " " + strings.Join(res.Operands, " ")
	}
	fmt.Fprintf(out, "\n%s\n", st.Title.Render(title))

	if res.Verdict != "" {
		verdict := st.Prime.Render(res.Verdict)
		if res.Verdict == "composite" {
			verdict = st.Composite.Render(res.Verdict)
		}
		fmt.Fprintf(out, "  %s %s\n", st.Label.Render("verdict:"), verdict)
	}
	for _, v := range res.Values {
		fmt.Fprintf(out, "  %s %s\n", st.Label.Render(v.Name+":"), st.Value.Render(FormatValue(v.Value, verbose)))
		if verbose {
			fmt.Fprintf(out, "  %s\n", st.Dim.Render(fmt.Sprintf("  %d bits, %d digits", v.Value.BitLen(), len(v.Value.String()))))
		}
	}
	if res.Algorithm != "" {
		fmt.Fprintf(out, "  %s %s\n", st.Label.Render("algorithm:"), res.Algorithm)
	}
	fmt.Fprintf(out, "  %s %s\n", st.Label.Render("time:"), format.FormatExecutionDuration(res.Duration))
}

// FormatQuietResult returns the verdict, or the values in full separated
// by spaces.
func FormatQuietResult(res Result) string {
	if res.Verdict != "" {
		return res.Verdict
	}
	parts := make([]string, len(res.Values))
	for i, v := range res.Values {
		parts[i] = v.Value.String()
	}
	return strings.Join(parts, " ")
}

// DisplayQuietResult writes FormatQuietResult on one line.
func DisplayQuietResult(out io.Writer, res Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// WriteResultToFile writes res in full with a provenance header. An empty
// path writes nothing.
func WriteResultToFile(res Result, path string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# natcalc %s %s\n", res.Command, strings.Join(res.Operands, " "))
	fmt.Fprintf(file, "# Date: %s\n", time.Now().Format(time.RFC3339))
	if res.Algorithm != "" {
		fmt.Fprintf(file, "# Algorithm: %s\n", res.Algorithm)
	}
	fmt.Fprintf(file, "# Duration: %s\n\n", res.Duration)
	if res.Verdict != "" {
		fmt.Fprintf(file, "verdict = %s\n", res.Verdict)
	}
	for _, v := range res.Values {
		fmt.Fprintf(file, "%s =\n%s\n", v.Name, v.Value.String())
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayResultWithConfig displays res per cfg and saves it when an output
// file is set.
func DisplayResultWithConfig(out io.Writer, res Result, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(out, res, cfg.Verbose)
	}
	if cfg.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(res, cfg.OutputFile); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
	}
	return nil
}

// DisplayMemoryStats shows the allocation between two snapshots.
func DisplayMemoryStats(out io.Writer, before, after metrics.MemorySnapshot) {
	allocated, gcCycles := after.Delta(before)
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", gcCycles)
}
