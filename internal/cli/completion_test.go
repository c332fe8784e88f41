package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/natcalc/internal/config"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	for _, shell := range append(Shells, "ps") {
		t.Run(shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, shell, config.Commands(), config.Algorithms); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", shell, err)
			}
			out := buf.String()
			for _, want := range []string{"natcalc", "divmod", "modpow", "barrett", "dc-threshold", "calibration-profile"} {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh", config.Commands(), config.Algorithms)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("GenerateCompletion(tcsh) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("output written for unsupported shell")
	}
}

func TestFlagRegistryMatchesParser(t *testing.T) {
	t.Parallel()
	for _, f := range flagRegistry {
		if f.Long == "help" {
			continue
		}
		args := []string{"--" + f.Long}
		if f.ValueName != "" {
			value := "1"
			switch {
			case f.IsAlgo:
				value = "dc"
			case len(f.Values) > 0:
				value = f.Values[0]
			case f.IsFile:
				value = "x.out"
			}
			args = append(args, value)
		}
		args = append(args, "version")
		var errBuf bytes.Buffer
		if _, err := config.ParseConfig("natcalc", args, &errBuf); err != nil {
			t.Errorf("flag --%s rejected by the parser: %v\n%s", f.Long, err, errBuf.String())
		}
	}
}
