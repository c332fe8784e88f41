//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
)

// ProgressUpdate reports the fraction of its share a worker has finished.
type ProgressUpdate struct {
	// WorkerIndex identifies the sending worker.
	WorkerIndex int
	// Value is in [0, 1].
	Value float64
}

// ProgressReporter displays progress updates. The orchestration layer sends
// updates and never renders them itself.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done. It runs in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numWorkers int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numWorkers int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numWorkers int, out io.Writer) {
	f(wg, progressChan, numWorkers, out)
}

// NullProgressReporter drains the channel without output, for quiet mode.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// PrimalityTester decides primality of single values. It must be safe for
// concurrent use.
type PrimalityTester interface {
	IsPrime(n uint64) bool
}

// PrimalityTesterFunc adapts a function to PrimalityTester.
type PrimalityTesterFunc func(n uint64) bool

// IsPrime calls f.
func (f PrimalityTesterFunc) IsPrime(n uint64) bool { return f(n) }

// ResultPresenter renders division results.
type ResultPresenter interface {
	// PresentComparisonTable shows every algorithm's duration and status.
	PresentComparisonTable(results []DivisionResult, out io.Writer)
	// PresentDivision shows the agreed quotient and remainder.
	PresentDivision(result DivisionResult, verbose bool, out io.Writer)
}
