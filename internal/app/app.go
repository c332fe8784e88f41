// Package app wires configuration, the arithmetic kernel and the terminal
// front end into the natcalc commands.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/natcalc/internal/calibration"
	"github.com/agbru/natcalc/internal/cli"
	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/logging"
	"github.com/agbru/natcalc/internal/metrics"
	"github.com/agbru/natcalc/internal/sysmon"
	"github.com/agbru/natcalc/internal/ui"
)

// Application is one natcalc invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	// in feeds the REPL.
	in io.Reader

	logger  logging.Logger
	metrics *metrics.Metrics
	// profileLoaded records whether the thresholds came from a calibration
	// profile.
	profileLoaded bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// WithInput replaces standard input for the REPL.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.in = r }
}

// WithMetrics records into m instead of a fresh registry.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.metrics = m }
}

// New parses args (program name first) and resolves the kernel thresholds:
// flags and environment first, then a valid calibration profile, then the
// adaptive estimate.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "natcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		var configErr apperrors.ConfigError
		if !IsHelpError(err) && !errors.As(err, &configErr) {
			err = apperrors.ConfigError{Message: err.Error()}
		}
		return nil, err
	}

	app := &Application{ErrWriter: errWriter, in: os.Stdin}
	if withProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = withProfile
		app.profileLoaded = true
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}
	app.Config = cfg

	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = newLogger(errWriter, cfg)
	}
	if app.metrics == nil {
		app.metrics = metrics.New()
	}
	return app, nil
}

// newLogger logs warnings and errors to w, and debug entries in verbose
// mode.
func newLogger(w io.Writer, cfg config.AppConfig) logging.Logger {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: "15:04:05"}
	return logging.NewZerologAdapter(zerolog.New(console).Level(level).With().Timestamp().Str("component", "natcalc").Logger())
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	if ui.GetCurrentTheme().Name != ui.NoColorTheme.Name {
		ui.SetTheme(a.Config.Theme)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	if a.Config.Command != config.CmdREPL {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
	}

	a.logger.Debug("thresholds resolved", logging.Bool("profile", a.profileLoaded),
		logging.Int("dc", a.Config.DCThreshold), logging.Int("barrett", a.Config.BarrettThreshold),
		logging.Int("inv_newton", a.Config.InvNewtonThreshold))

	showDetails := a.Config.Verbose && !a.Config.Quiet && isArithmetic(a.Config.Command)
	if showDetails {
		cli.PrintExecutionConfig(a.Config, sysmon.Describe(), out)
	}
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	req := cli.REPLRequest{Command: a.Config.Command, Args: a.Config.Args, Algo: a.Config.Algo, Verbose: a.Config.Verbose}
	err := a.execute(ctx, req, out)

	if showDetails {
		cli.DisplayMemoryStats(out, before, collector.Snapshot())
	}
	if a.Config.MetricsFile != "" {
		if werr := a.metrics.WriteToTextfile(a.Config.MetricsFile); werr != nil {
			a.logger.Error("failed to write metrics", werr, logging.String("path", a.Config.MetricsFile))
		}
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
