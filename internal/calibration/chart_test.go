package calibration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleResult() Result {
	p := NewProfile()
	p.DCThreshold = 64
	return Result{
		Profile: p,
		Measurements: map[string][]Measurement{
			CrossoverDC: {
				{Crossover: CrossoverDC, Words: 32, Baseline: 40 * time.Microsecond, Candidate: 55 * time.Microsecond},
				{Crossover: CrossoverDC, Words: 64, Baseline: 150 * time.Microsecond, Candidate: 120 * time.Microsecond},
			},
			CrossoverInvNewton: {
				{Crossover: CrossoverInvNewton, Words: 128, Baseline: time.Millisecond, Candidate: 700 * time.Microsecond},
			},
		},
	}
}

func TestRenderChart(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := RenderChart(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"natcalc calibration", CrossoverDC + " crossover", CrossoverInvNewton + " crossover", "schoolbook", "divide-and-conquer", "newton"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart missing %q", want)
		}
	}
	if strings.Contains(html, CrossoverKaratsuba+" crossover") {
		t.Error("chart drawn for a crossover without measurements")
	}
}

func TestSaveChart(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "charts", "calibration.html")
	if err := SaveChart(sampleResult(), path); err != nil {
		t.Fatalf("SaveChart: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("chart file: %v, %v", info, err)
	}
}
