// Environment overrides for flags that were not given on the command line.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliased flags was given.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps one environment key (without EnvPrefix) to the flags it
// stands in for.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

// envOverrides lists every supported NATCALC_ variable.
var envOverrides = []envOverride{
	{"WORKERS", []string{"workers"}, intOverride(func(c *AppConfig) *int { return &c.Workers })},
	{"DC_THRESHOLD", []string{"dc-threshold"}, intOverride(func(c *AppConfig) *int { return &c.DCThreshold })},
	{"BARRETT_THRESHOLD", []string{"barrett-threshold"}, intOverride(func(c *AppConfig) *int { return &c.BarrettThreshold })},
	{"BARRETT_BALANCE_THRESHOLD", []string{"barrett-balance-threshold"}, intOverride(func(c *AppConfig) *int { return &c.BarrettBalanceThreshold })},
	{"INV_NEWTON_THRESHOLD", []string{"inv-newton-threshold"}, intOverride(func(c *AppConfig) *int { return &c.InvNewtonThreshold })},
	{"KARATSUBA_THRESHOLD", []string{"karatsuba-threshold"}, intOverride(func(c *AppConfig) *int { return &c.KaratsubaThreshold })},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) { c.Algo = v }},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, func(c *AppConfig, v string) { c.CalibrationProfile = v }},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) { c.Theme = v }},

	{"VERBOSE", []string{"v", "verbose"}, boolOverride(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"q", "quiet"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
	{"QUICK", []string{"quick"}, boolOverride(func(c *AppConfig) *bool { return &c.Quick })},
	{"CHART", []string{"chart"}, func(c *AppConfig, v string) { c.ChartFile = v }},
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case and returns
// defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies NATCALC_* variables to every setting whose flag
// was not given, giving the priority flags > environment > defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
