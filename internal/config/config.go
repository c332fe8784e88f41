// Package config parses the command line and environment of natcalc into
// an AppConfig and derives the kernel thresholds from it.
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/nat"
)

// EnvPrefix prefixes every environment override, e.g. NATCALC_TIMEOUT.
const EnvPrefix = "NATCALC_"

// Commands.
const (
	CmdIsPrime    = "isprime"
	CmdPrimes     = "primes"
	CmdDivMod     = "divmod"
	CmdModMul     = "modmul"
	CmdModPow     = "modpow"
	CmdInvert     = "invert"
	CmdCalibrate  = "calibrate"
	CmdVersion    = "version"
	CmdCompletion = "completion"
	CmdREPL       = "repl"
)

// commandArity is the number of operands each command takes.
var commandArity = map[string]int{
	CmdIsPrime:    1,
	CmdPrimes:     2,
	CmdDivMod:     2,
	CmdModMul:     3,
	CmdModPow:     3,
	CmdInvert:     1,
	CmdCalibrate:  0,
	CmdVersion:    0,
	CmdCompletion: 1,
	CmdREPL:       0,
}

// Commands returns the command names in sorted order.
func Commands() []string {
	names := make([]string, 0, len(commandArity))
	for name := range commandArity {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Arity returns the operand count of command, or -1 when it is unknown.
func Arity(command string) int {
	if n, ok := commandArity[command]; ok {
		return n
	}
	return -1
}

// Algorithms accepted by --algo. "all" runs every explicit algorithm and
// cross-checks their results.
var Algorithms = []string{"auto", "schoolbook", "dc", "barrett", "all"}

// AppConfig aggregates every setting of one natcalc invocation.
type AppConfig struct {
	// Command is the subcommand, e.g. "divmod".
	Command string
	// Args are the operands that follow the command.
	Args []string
	// Algo selects the division algorithm.
	Algo string
	// Workers bounds the goroutines of a prime range sweep.
	Workers int
	// Timeout bounds the whole command.
	Timeout time.Duration

	// Kernel crossovers in words. Zero means "not set": the calibration
	// profile or the adaptive estimate fills it in.
	DCThreshold             int
	BarrettThreshold        int
	BarrettBalanceThreshold int
	InvNewtonThreshold      int
	KaratsubaThreshold      int

	// CalibrationProfile is the profile path, default
	// ~/.natcalc_calibration.json.
	CalibrationProfile string
	// MetricsFile, when set, receives the Prometheus text exposition of the
	// run.
	MetricsFile string
	// OutputFile, when set, receives the result with a provenance header.
	OutputFile string
	// Theme names the color theme (dark, light, orange, none).
	Theme string
	// Quick makes calibrate measure fewer sizes with shorter samples.
	Quick bool
	// ChartFile, when set, receives an HTML chart of the calibration
	// measurements.
	ChartFile string

	Verbose bool
	Quiet   bool
	NoColor bool
}

// Thresholds returns the kernel thresholds selected by the configuration.
// Unset fields keep the package defaults.
func (c AppConfig) Thresholds() nat.Thresholds {
	th := nat.DefaultThresholds()
	set := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	set(&th.DivDCThreshold, c.DCThreshold)
	set(&th.DivMU, c.BarrettThreshold)
	set(&th.DivMUPI, c.BarrettBalanceThreshold)
	set(&th.InvNewton, c.InvNewtonThreshold)
	set(&th.Karatsuba, c.KaratsubaThreshold)
	if alg, err := nat.ParseDivAlgorithm(c.Algo); err == nil {
		th.Algorithm = alg
	}
	return th
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if c.Command == "" {
		return apperrors.NewConfigError("missing command; expected one of %s", strings.Join(Commands(), ", "))
	}
	arity := Arity(c.Command)
	if arity < 0 {
		return apperrors.NewConfigError("unknown command %q; expected one of %s", c.Command, strings.Join(Commands(), ", "))
	}
	if len(c.Args) != arity {
		return apperrors.NewConfigError("%s takes %d operand(s), got %d", c.Command, arity, len(c.Args))
	}
	if !slices.Contains(Algorithms, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm %q; expected one of %s", c.Algo, strings.Join(Algorithms, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive")
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers cannot be negative")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	for name, v := range map[string]int{
		"dc-threshold":              c.DCThreshold,
		"barrett-threshold":         c.BarrettThreshold,
		"barrett-balance-threshold": c.BarrettBalanceThreshold,
		"inv-newton-threshold":      c.InvNewtonThreshold,
		"karatsuba-threshold":       c.KaratsubaThreshold,
	} {
		if v < 0 {
			return apperrors.NewConfigError("--%s cannot be negative", name)
		}
	}
	return nil
}

// ParseConfig parses args (without the program name). Flags precede the
// command; everything after it is an operand, even when it starts with a
// dash, so a negative operand reaches operand validation. Environment
// overrides apply to every flag not given on the command line.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Algo, "algo", "auto", "Division algorithm: "+strings.Join(Algorithms, ", ")+".")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "Goroutines used by the primes range sweep.")
	fs.DurationVar(&cfg.Timeout, "timeout", 5*time.Minute, "Maximum duration of the command.")
	fs.IntVar(&cfg.DCThreshold, "dc-threshold", 0, "Words above which divide-and-conquer division is used (0 = auto).")
	fs.IntVar(&cfg.BarrettThreshold, "barrett-threshold", 0, "Dividend half-size above which Barrett division may be used (0 = auto).")
	fs.IntVar(&cfg.BarrettBalanceThreshold, "barrett-balance-threshold", 0, "Divisor size above which Barrett division may be used (0 = auto).")
	fs.IntVar(&cfg.InvNewtonThreshold, "inv-newton-threshold", 0, "Words above which the inverse uses Newton iteration (0 = auto).")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", 0, "Words above which Karatsuba multiplication is used (0 = auto).")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", "", "Path to the calibration profile.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the result to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write the result to this file (shorthand).")
	fs.StringVar(&cfg.Theme, "theme", "dark", "Color theme: dark, light, orange, none.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output: full values and algorithm details.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Quiet mode: print only the result.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.Quick, "quick", false, "Calibrate with fewer sizes and shorter samples.")
	fs.StringVar(&cfg.ChartFile, "chart", "", "Write an HTML chart of the calibration measurements to this file.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] <command> [operands]\n\nCommands:\n", programName)
		for _, name := range Commands() {
			fmt.Fprintf(errorWriter, "  %-11s %s\n", name, commandUsage[name])
		}
		fmt.Fprintf(errorWriter, "\nOperands are decimal or 0x-prefixed hexadecimal.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return cfg, nil
}

var commandUsage = map[string]string{
	CmdIsPrime:    "N            primality verdict for N",
	CmdPrimes:     "LO HI        count primes in [LO, HI)",
	CmdDivMod:     "N D          quotient and remainder of N / D",
	CmdModMul:     "X Y M        X*Y mod M",
	CmdModPow:     "B E M        B^E mod M",
	CmdInvert:     "D            approximate inverse of D",
	CmdCalibrate:  "             measure kernel crossovers and save a profile",
	CmdVersion:    "             print version information",
	CmdCompletion: "SHELL        print a completion script (bash, zsh, fish, powershell)",
	CmdREPL:       "             interactive session",
}
