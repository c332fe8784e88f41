package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output should contain %q, got: %s", w, output)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	errDiv := errors.New("division by zero")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("command", "divmod"), "command", "divmod"},
		{"Int", Int("words", 42), "words", 42},
		{"Uint64", Uint64("n", 18_446_744_073_709_551_557), "n", uint64(18_446_744_073_709_551_557)},
		{"Float64", Float64("ns_per_op", 3.5), "ns_per_op", 3.5},
		{"Bool", Bool("prime", true), "prime", true},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err", Err(errDiv), "error", errDiv},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("%s = %+v, want {%s %v}", tt.name, tt.field, tt.key, tt.value)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "calibration")
	logger.Info("crossover found", Int("dc_threshold", 60))
	assertContains(t, buf.String(), "calibration", "crossover found", "60", "info")
}

func TestNewDefaultLoggerAndNop(t *testing.T) {
	t.Parallel()
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
	Nop().Info("discarded")
}

func TestZerologAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		log  func(Logger)
		want []string
	}{
		{"info with fields", func(l Logger) {
			l.Info("sweep done", String("range", "1..1000"), Int("primes", 168))
		}, []string{"sweep done", "1..1000", "168"}},
		{"error with cause", func(l Logger) {
			l.Error("divmod failed", errors.New("zero divisor"), String("op", "nat.DivMod"))
		}, []string{"divmod failed", "zero divisor", "nat.DivMod", "error"}},
		{"error without cause", func(l Logger) {
			l.Error("warning", nil)
		}, []string{"warning", "error"}},
		{"printf", func(l Logger) {
			l.Printf("checked %d values in %s", 1000, "2ms")
		}, []string{"checked 1000 values in 2ms"}},
		{"println", func(l Logger) {
			l.Println("barrett", "selected")
		}, []string{"barrett selected"}},
		{"typed fields", func(l Logger) {
			l.Info("fields",
				Field{Key: "i64", Value: int64(9223372036854775807)},
				Field{Key: "u64", Value: uint64(18446744073709551615)},
				Field{Key: "f", Value: 3.14},
				Field{Key: "e", Value: errors.New("oops")},
				Field{Key: "b", Value: true},
				Field{Key: "d", Value: 1500 * time.Millisecond},
				Field{Key: "s", Value: struct{ Words int }{Words: 7}},
			)
		}, []string{"9223372036854775807", "18446744073709551615", "3.14", "oops", "true", "1500", "Words"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewLogger(&buf, "test"))
			assertContains(t, buf.String(), tt.want...)
		})
	}
}

func TestZerologAdapter_DebugLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).Debug("dispatch", String("alg", "dc"))
	assertContains(t, buf.String(), "dispatch", "debug", "dc")

	buf.Reset()
	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel)).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry written at info level: %s", buf.String())
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		log  func(Logger)
		want []string
	}{
		{"info", func(l Logger) { l.Info("verdict", Bool("prime", true)) }, []string{"[INFO]", "verdict", "prime=true"}},
		{"error", func(l Logger) { l.Error("failed", errors.New("boom"), String("cmd", "modpow")) }, []string{"[ERROR]", "failed", "boom", "cmd=modpow"}},
		{"debug", func(l Logger) { l.Debug("trace", Int("line", 42)) }, []string{"[DEBUG]", "trace", "line=42"}},
		{"printf", func(l Logger) { l.Printf("value is %d", 123) }, []string{"value is 123"}},
		{"println", func(l Logger) { l.Println("a", "b", "c") }, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			assertContains(t, buf.String(), tt.want...)
		})
	}
}

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
)
