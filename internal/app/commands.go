package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/natcalc/internal/calibration"
	"github.com/agbru/natcalc/internal/cli"
	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/logging"
	"github.com/agbru/natcalc/internal/modmul"
	"github.com/agbru/natcalc/internal/nat"
	"github.com/agbru/natcalc/internal/orchestration"
	"github.com/agbru/natcalc/internal/primality"
	"github.com/agbru/natcalc/internal/ui"
)

const tracerName = "github.com/agbru/natcalc"

type commandFunc func(a *Application, ctx context.Context, req cli.REPLRequest, out io.Writer) error

var commandTable map[string]commandFunc

// The table is filled in init because runREPL reaches back into execute,
// which reads the table.
func init() {
	commandTable = map[string]commandFunc{
		config.CmdIsPrime:    (*Application).runIsPrime,
		config.CmdPrimes:     (*Application).runPrimes,
		config.CmdDivMod:     (*Application).runDivMod,
		config.CmdModMul:     (*Application).runModMul,
		config.CmdModPow:     (*Application).runModPow,
		config.CmdInvert:     (*Application).runInvert,
		config.CmdCalibrate:  (*Application).runCalibrate,
		config.CmdVersion:    (*Application).runVersion,
		config.CmdCompletion: (*Application).runCompletion,
		config.CmdREPL:       (*Application).runREPL,
	}
}

// isArithmetic reports whether command runs the kernel on operands.
func isArithmetic(command string) bool {
	switch command {
	case config.CmdIsPrime, config.CmdPrimes, config.CmdDivMod, config.CmdModMul, config.CmdModPow, config.CmdInvert:
		return true
	}
	return false
}

// execute runs one command inside a trace span, records its metrics and
// turns kernel precondition panics into errors.
func (a *Application) execute(ctx context.Context, req cli.REPLRequest, out io.Writer) (err error) {
	run, ok := commandTable[req.Command]
	if !ok {
		return apperrors.NewConfigError("unknown command %q", req.Command)
	}
	if n := config.Arity(req.Command); len(req.Args) != n {
		return apperrors.NewConfigError("%s takes %d operand(s), got %d", req.Command, n, len(req.Args))
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "natcalc."+req.Command, trace.WithAttributes(
		attribute.String("natcalc.command", req.Command),
		attribute.String("natcalc.algo", req.Algo),
		attribute.Int("natcalc.operands", len(req.Args)),
	))
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: req.Command, Limit: a.Config.Timeout}
		}
		if req.Command != config.CmdREPL {
			a.metrics.ObserveOperation(req.Command, elapsed, err)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			a.logger.Debug("command failed", logging.String("command", req.Command), logging.Duration("elapsed", elapsed), logging.Err(err))
		} else {
			a.logger.Debug("command finished", logging.String("command", req.Command), logging.Duration("elapsed", elapsed))
		}
		span.End()
	}()
	defer apperrors.RecoverPrecondition(&err)

	return run(a, ctx, req, out)
}

// parseOperand reads a decimal, 0x hexadecimal, 0o octal or 0b binary
// operand. Negative values are rejected.
func parseOperand(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("%q is not an integer", s)}
	}
	if v.Sign() < 0 {
		return nil, apperrors.ValidationError{Field: field, Message: "must be non-negative"}
	}
	return v, nil
}

// parseOperands parses req.Args under the given field names.
func parseOperands(args []string, fields ...string) ([]*big.Int, error) {
	vals := make([]*big.Int, len(fields))
	for i, f := range fields {
		v, err := parseOperand(f, args[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (a *Application) observeBits(command string, vals ...*big.Int) {
	bits := 0
	for _, v := range vals {
		bits = max(bits, v.BitLen())
	}
	a.metrics.ObserveOperandBits(command, bits)
}

// thresholds returns the configured crossovers with algo applied.
func (a *Application) thresholds(algo string) nat.Thresholds {
	cfg := a.Config
	cfg.Algo = algo
	return cfg.Thresholds()
}

func (a *Application) outputConfig(verbose bool) cli.OutputConfig {
	return cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet, Verbose: verbose}
}

func (a *Application) runIsPrime(_ context.Context, req cli.REPLRequest, out io.Writer) error {
	vals, err := parseOperands(req.Args, "N")
	if err != nil {
		return err
	}
	n := vals[0]
	a.observeBits(req.Command, n)

	start := time.Now()
	verdict := "composite"
	if primality.IsProbablePrime(nat.FromBig(n)) {
		verdict = "prime"
		if n.BitLen() > 64 {
			verdict = "probable prime"
		}
	}
	res := cli.Result{Command: req.Command, Operands: req.Args, Verdict: verdict, Duration: time.Since(start)}
	return cli.DisplayResultWithConfig(out, res, a.outputConfig(req.Verbose))
}

func (a *Application) runPrimes(ctx context.Context, req cli.REPLRequest, out io.Writer) error {
	vals, err := parseOperands(req.Args, "LO", "HI")
	if err != nil {
		return err
	}
	lo, hi := vals[0], vals[1]
	if !hi.IsUint64() {
		return apperrors.ValidationError{Field: "HI", Message: "must fit in 64 bits"}
	}
	if lo.Cmp(hi) > 0 {
		return apperrors.ValidationError{Field: "LO", Message: "must not exceed HI"}
	}
	a.observeBits(req.Command, hi)

	opts := orchestration.SweepOptions{
		Workers:  a.Config.Workers,
		Reporter: cli.CLIProgressReporter{},
		Out:      out,
		Logger:   a.logger,
	}
	if a.Config.Quiet {
		opts.Reporter, opts.Out = orchestration.NullProgressReporter{}, io.Discard
	}
	tester := orchestration.PrimalityTesterFunc(primality.IsPrime64)
	sweep, err := orchestration.CountPrimes(ctx, lo.Uint64(), hi.Uint64(), tester, opts)
	a.metrics.AddSweep(sweep.Tested, sweep.Count)
	if err != nil {
		if !a.Config.Quiet {
			fmt.Fprintf(out, "%sInterrupted after testing %d values (%d primes found).%s\n",
				ui.ColorYellow(), sweep.Tested, sweep.Count, ui.ColorReset())
		}
		return err
	}

	res := cli.SweepToResult(sweep, req.Args)
	if err := cli.DisplayResultWithConfig(out, res, a.outputConfig(req.Verbose)); err != nil {
		return err
	}
	if req.Verbose && !a.Config.Quiet {
		cli.DisplaySweepRate(out, sweep)
	}
	return nil
}

func (a *Application) runDivMod(ctx context.Context, req cli.REPLRequest, out io.Writer) error {
	vals, err := parseOperands(req.Args, "N", "D")
	if err != nil {
		return err
	}
	n, d := vals[0], vals[1]
	if d.Sign() == 0 {
		return apperrors.ValidationError{Field: "D", Message: "division by zero"}
	}
	a.observeBits(req.Command, n, d)

	algorithms, err := orchestration.SelectAlgorithms(req.Algo)
	if err != nil {
		return err
	}
	nd := nat.FromBig(d)
	nat.PreWarm(len(nd), len(algorithms))
	results := orchestration.ExecuteDivisions(ctx, algorithms, a.thresholds(req.Algo), nat.FromBig(n), nd)

	presenter := cli.CLIResultPresenter{Operands: req.Args, Quiet: a.Config.Quiet}
	best, err := orchestration.AnalyzeDivisionResults(results, presenter, req.Verbose, out)
	if err != nil {
		return err
	}
	if a.Config.OutputFile != "" {
		if err := cli.WriteResultToFile(cli.DivisionToResult(best, req.Args), a.Config.OutputFile); err != nil {
			return err
		}
	}
	return nil
}

func (a *Application) runModMul(_ context.Context, req cli.REPLRequest, out io.Writer) error {
	vals, err := parseOperands(req.Args, "X", "Y", "M")
	if err != nil {
		return err
	}
	x, y, m := vals[0], vals[1], vals[2]
	if m.Sign() == 0 {
		return apperrors.ValidationError{Field: "M", Message: "modulus must be nonzero"}
	}
	if x.Cmp(m) >= 0 {
		return apperrors.ValidationError{Field: "X", Message: "must be below the modulus"}
	}
	if y.Cmp(m) >= 0 {
		return apperrors.ValidationError{Field: "Y", Message: "must be below the modulus"}
	}
	a.observeBits(req.Command, m)

	nx, ny, nm := nat.FromBig(x), nat.FromBig(y), nat.FromBig(m)
	start := time.Now()
	data := modmul.Precompute(nm)
	r := modmul.Mul(nx, ny, nm, data)
	elapsed := time.Since(start)
	if req.Algo == "all" {
		if naive := modmul.MulNaive(nx, ny, nm); naive.Cmp(r) != 0 {
			return apperrors.MismatchError{Algorithms: [2]string{"precomputed", "naive"}}
		}
	}

	res := cli.Result{
		Command:  req.Command,
		Operands: req.Args,
		Values:   []cli.NamedValue{{Name: "product", Value: nat.ToBig(r)}},
		Duration: elapsed,
	}
	return cli.DisplayResultWithConfig(out, res, a.outputConfig(req.Verbose))
}

func (a *Application) runModPow(_ context.Context, req cli.REPLRequest, out io.Writer) error {
	vals, err := parseOperands(req.Args, "B", "E", "M")
	if err != nil {
		return err
	}
	b, e, m := vals[0], vals[1], vals[2]
	if m.Sign() == 0 {
		return apperrors.ValidationError{Field: "M", Message: "modulus must be nonzero"}
	}
	a.observeBits(req.Command, b, e, m)

	start := time.Now()
	r := modmul.Pow(nat.FromBig(b), nat.FromBig(e), nat.FromBig(m))
	res := cli.Result{
		Command:  req.Command,
		Operands: req.Args,
		Values:   []cli.NamedValue{{Name: "power", Value: nat.ToBig(r)}},
		Duration: time.Since(start),
	}
	return cli.DisplayResultWithConfig(out, res, a.outputConfig(req.Verbose))
}

// runInvert normalizes D by a left shift s so its top bit is set, then
// reports the n-word inverse I of D·2^s with B^n + I = floor((B^2n-1)/(D·2^s)).
func (a *Application) runInvert(_ context.Context, req cli.REPLRequest, out io.Writer) error {
	vals, err := parseOperands(req.Args, "D")
	if err != nil {
		return err
	}
	d := vals[0]
	if d.Sign() == 0 {
		return apperrors.ValidationError{Field: "D", Message: "cannot invert zero"}
	}
	a.observeBits(req.Command, d)

	words := (d.BitLen() + nat.W - 1) / nat.W
	shift := words*nat.W - d.BitLen()
	dn := nat.FromBig(new(big.Int).Lsh(d, uint(shift)))

	th := a.thresholds(req.Algo)
	start := time.Now()
	approx := th.Invert(dn)
	exact := approx.Correct(dn)
	elapsed := time.Since(start)

	method := "exact"
	if !approx.Exact {
		method = "newton"
	}
	values := []cli.NamedValue{
		{Name: "inverse", Value: nat.ToBig(nat.FromWords(exact.Words))},
		{Name: "shift", Value: big.NewInt(int64(shift))},
		{Name: "words", Value: big.NewInt(int64(words))},
	}
	if req.Verbose && !approx.Exact {
		values = append(values, cli.NamedValue{Name: "approximation", Value: nat.ToBig(nat.FromWords(approx.Words))})
	}
	res := cli.Result{Command: req.Command, Operands: req.Args, Algorithm: method, Values: values, Duration: elapsed}
	return cli.DisplayResultWithConfig(out, res, a.outputConfig(req.Verbose))
}

func (a *Application) runCalibrate(ctx context.Context, _ cli.REPLRequest, out io.Writer) error {
	opts := calibration.Options{Quick: a.Config.Quick, Logger: a.logger, Seed: time.Now().UnixNano()}
	if !a.Config.Quiet {
		progress := cli.NewCalibrationProgress(out)
		opts.OnStep = progress.Step
		defer progress.Stop()
	}
	res, err := calibration.Run(ctx, opts)
	if err != nil {
		return err
	}

	path := a.Config.CalibrationProfile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}
	if err := res.Profile.SaveProfile(path); err != nil {
		return err
	}
	if a.Config.ChartFile != "" {
		if err := calibration.SaveChart(res, a.Config.ChartFile); err != nil {
			return err
		}
	}
	if a.Config.Quiet {
		fmt.Fprintln(out, path)
		return nil
	}
	calibration.PrintResults(out, res)
	fmt.Fprintf(out, "\n%s✓ Profile saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
	if a.Config.ChartFile != "" {
		fmt.Fprintf(out, "%s✓ Chart saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), a.Config.ChartFile, ui.ColorReset())
	}
	return nil
}

func (a *Application) runVersion(_ context.Context, _ cli.REPLRequest, out io.Writer) error {
	PrintVersion(out)
	return nil
}

func (a *Application) runCompletion(_ context.Context, req cli.REPLRequest, out io.Writer) error {
	if err := cli.GenerateCompletion(out, req.Args[0], config.Commands(), config.Algorithms); err != nil {
		return apperrors.ConfigError{Message: err.Error()}
	}
	return nil
}

func (a *Application) runREPL(ctx context.Context, req cli.REPLRequest, out io.Writer) error {
	repl := cli.NewREPL(a.execute, cli.REPLConfig{
		DefaultAlgo: req.Algo,
		Timeout:     a.Config.Timeout,
		Verbose:     req.Verbose,
	})
	repl.SetInput(a.in)
	repl.SetOutput(out)
	repl.Start(ctx)
	return nil
}
