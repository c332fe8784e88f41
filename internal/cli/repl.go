package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/agbru/natcalc/internal/config"
	"github.com/agbru/natcalc/internal/ui"
)

// REPLRequest is one command line entered in the REPL, with the session
// settings applied.
type REPLRequest struct {
	Command string
	Args    []string
	Algo    string
	Verbose bool
}

// REPLExecutor runs a request and writes its result to out. The app layer
// supplies it so the REPL shares the one-shot command path.
type REPLExecutor func(ctx context.Context, req REPLRequest, out io.Writer) error

// REPLConfig holds the session settings.
type REPLConfig struct {
	// DefaultAlgo is the initial division algorithm.
	DefaultAlgo string
	// Timeout bounds each command.
	Timeout time.Duration
	// Verbose starts the session in verbose mode.
	Verbose bool
}

// REPL is an interactive session over the natcalc commands.
type REPL struct {
	config  REPLConfig
	exec    REPLExecutor
	algo    string
	verbose bool
	in      io.Reader
	out     io.Writer
}

// NewREPL returns a session that runs commands through exec.
func NewREPL(exec REPLExecutor, cfg REPLConfig) *REPL {
	algo := cfg.DefaultAlgo
	if algo == "" {
		algo = "auto"
	}
	return &REPL{
		config:  cfg,
		exec:    exec,
		algo:    algo,
		verbose: cfg.Verbose,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput replaces standard input.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces standard output.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads and runs commands until "exit", EOF or ctx ends.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+"natcalc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.processCommand(ctx, input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %snatcalc - Interactive Mode%s                           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// replCommands are the natcalc commands runnable from the REPL.
func replCommands() []string {
	return slices.DeleteFunc(config.Commands(), func(c string) bool {
		return c == config.CmdREPL || c == config.CmdCompletion
	})
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range replCommands() {
		fmt.Fprintf(r.out, "  %s%-10s%s %d operand(s)\n", ui.ColorYellow(), c, ui.ColorReset(), config.Arity(c))
	}
	fmt.Fprintf(r.out, "  %salgo <name>%s  change division algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(config.Algorithms, ", "))
	fmt.Fprintf(r.out, "  %sverbose%s      toggle full values\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s       show session settings\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s         show this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s         leave\n", ui.ColorYellow(), ui.ColorReset())
}

// processCommand runs one line and reports whether the session goes on.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "algo", "a":
		r.cmdAlgo(args)
	case "verbose":
		r.verbose = !r.verbose
		fmt.Fprintf(r.out, "Verbose output: %s%v%s\n", ui.ColorGreen(), r.verbose, ui.ColorReset())
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.run(ctx, cmd, args)
	}
	return true
}

func (r *REPL) run(ctx context.Context, cmd string, args []string) {
	if !slices.Contains(replCommands(), cmd) {
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	if n := config.Arity(cmd); len(args) != n {
		fmt.Fprintf(r.out, "%s%s takes %d operand(s), got %d%s\n", ui.ColorRed(), cmd, n, len(args), ui.ColorReset())
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()
	req := REPLRequest{Command: cmd, Args: args, Algo: r.algo, Verbose: r.verbose}
	if err := r.exec(ctx, req, r.out); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(config.Algorithms, ", "))
		return
	}
	name := strings.ToLower(args[0])
	if !slices.Contains(config.Algorithms, name) {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(config.Algorithms, ", "))
		return
	}
	r.algo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:  %s%s%s\n", ui.ColorCyan(), r.algo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Verbose:    %s%v%s\n", ui.ColorCyan(), r.verbose, ui.ColorReset())
	fmt.Fprintln(r.out)
}
