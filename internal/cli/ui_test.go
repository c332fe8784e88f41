package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/natcalc/internal/orchestration"
)

type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

// withMockSpinner swaps newSpinner for the duration of a test. Tests using
// it must not run in parallel.
func withMockSpinner(t *testing.T) *MockSpinner {
	t.Helper()
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	mock := &MockSpinner{}
	newSpinner = func(...spinner.Option) Spinner { return mock }
	return mock
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	rs := &realSpinner{spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))}
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestDisplayProgress(t *testing.T) {
	mock := withMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate)
	go func() {
		progressChan <- orchestration.ProgressUpdate{WorkerIndex: 0, Value: 0.5}
		progressChan <- orchestration.ProgressUpdate{WorkerIndex: 1, Value: 1}
		close(progressChan)
	}()

	var buf bytes.Buffer
	DisplayProgress(&wg, progressChan, 2, &buf)
	wg.Wait()

	if !mock.started || !mock.stopped {
		t.Errorf("spinner started=%v stopped=%v, want both", mock.started, mock.stopped)
	}
	if !strings.Contains(buf.String(), "75.0%") {
		t.Errorf("final bar should show the mean progress, got %q", buf.String())
	}
}

func TestDisplayProgressCompletes(t *testing.T) {
	withMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate, 4)
	progressChan <- orchestration.ProgressUpdate{WorkerIndex: 0, Value: 0.3}
	progressChan <- orchestration.ProgressUpdate{WorkerIndex: 0, Value: 1}
	progressChan <- orchestration.ProgressUpdate{WorkerIndex: 1, Value: 1}
	close(progressChan)

	var buf bytes.Buffer
	DisplayProgress(&wg, progressChan, 2, &buf)
	wg.Wait()
	if !strings.Contains(buf.String(), "100.0% ETA: done") {
		t.Errorf("finished sweep rendered as %q", buf.String())
	}
}

func TestDisplayProgressZeroWorkers(t *testing.T) {
	mock := withMockSpinner(t)
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate, 1)
	progressChan <- orchestration.ProgressUpdate{Value: 1}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
	if mock.started {
		t.Error("spinner started without workers")
	}
}

func TestCalibrationProgress(t *testing.T) {
	mock := withMockSpinner(t)
	p := NewCalibrationProgress(io.Discard)
	p.Step(3, 12, "dc")
	if !strings.Contains(mock.suffix, "dc") || !strings.Contains(mock.suffix, "25.0%") {
		t.Errorf("suffix = %q", mock.suffix)
	}
	p.Stop()
	if !mock.started || !mock.stopped {
		t.Error("spinner not started and stopped")
	}
}
