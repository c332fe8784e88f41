package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/natcalc/internal/nat"
	"github.com/agbru/natcalc/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.DivisionResult{
		{Algorithm: nat.AlgBarrett, Duration: 3 * time.Millisecond},
		{Algorithm: nat.AlgSchoolbook, Duration: 0},
		{Algorithm: nat.AlgDC, Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()
	for _, s := range []string{"Comparison Summary", "barrett", "3ms", "< 1µs", "Success", "Failure (boom)"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}

	buf.Reset()
	CLIResultPresenter{Quiet: true}.PresentComparisonTable(results, &buf)
	if buf.Len() != 0 {
		t.Errorf("quiet presenter printed a table: %q", buf.String())
	}
}

func TestPresentDivision(t *testing.T) {
	t.Parallel()
	result := orchestration.DivisionResult{
		Algorithm: nat.AlgDC,
		Quotient:  nat.FromUint64(12),
		Remainder: nat.FromUint64(5),
		Duration:  time.Millisecond,
	}

	var buf bytes.Buffer
	CLIResultPresenter{Operands: []string{"101", "8"}}.PresentDivision(result, false, &buf)
	for _, s := range []string{"divmod 101 8", "quotient:", "12", "remainder:", "5", "dc"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("output missing %q:\n%s", s, buf.String())
		}
	}

	buf.Reset()
	CLIResultPresenter{Quiet: true}.PresentDivision(result, false, &buf)
	if buf.String() != "12 5\n" {
		t.Errorf("quiet output = %q, want %q", buf.String(), "12 5\n")
	}
}

func TestDivisionToResultZeroRemainder(t *testing.T) {
	t.Parallel()
	res := DivisionToResult(orchestration.DivisionResult{Algorithm: nat.AlgSchoolbook, Quotient: nat.FromUint64(4)}, nil)
	if got := FormatQuietResult(res); got != "4 0" {
		t.Errorf("FormatQuietResult() = %q, want %q", got, "4 0")
	}
}
