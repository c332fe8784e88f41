package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/natcalc/internal/logging"
)

// ProgressBufferMultiplier sizes the progress channel per worker so that a
// slow display rarely drops updates.
const ProgressBufferMultiplier = 5

// sweepChunk is how many values a worker tests between cancellation checks
// and progress updates.
const sweepChunk = 1 << 12

// SweepOptions configures CountPrimes.
type SweepOptions struct {
	// Workers is the number of goroutines; values below 1 mean 1.
	Workers int
	// Reporter displays progress; nil means NullProgressReporter.
	Reporter ProgressReporter
	// Out receives the progress display.
	Out io.Writer
	// Logger receives per-worker debug entries; nil means no logging.
	Logger logging.Logger
}

// SweepResult summarizes a prime range sweep over [Lo, Hi).
type SweepResult struct {
	Lo, Hi uint64
	// Count is the number of primes found.
	Count uint64
	// Largest is the largest prime found, 0 if none.
	Largest uint64
	// Tested is the number of values tested, Hi-Lo unless canceled.
	Tested   uint64
	Duration time.Duration
}

type workerTally struct {
	count, largest, tested uint64
}

// CountPrimes counts the primes in [lo, hi) by splitting the range into
// contiguous shares, one per worker. On cancellation it returns the partial
// tally with ctx.Err().
func CountPrimes(ctx context.Context, lo, hi uint64, tester PrimalityTester, opts SweepOptions) (SweepResult, error) {
	start := time.Now()
	res := SweepResult{Lo: lo, Hi: hi}
	if hi <= lo {
		return res, nil
	}
	workers := uint64(max(opts.Workers, 1))
	workers = min(workers, hi-lo)
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	progressChan := make(chan ProgressUpdate, int(workers)*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, int(workers), out)

	tallies := make([]workerTally, workers)
	share := (hi - lo) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		from := lo + w*share
		to := from + share
		if w == workers-1 {
			to = hi
		}
		g.Go(func() error {
			err := sweepShare(gctx, from, to, int(w), tester, progressChan, &tallies[w])
			logger.Debug("sweep share done",
				logging.Int("worker", int(w)),
				logging.Uint64("from", from),
				logging.Uint64("to", to),
				logging.Uint64("primes", tallies[w].count))
			return err
		})
	}
	err := g.Wait()
	close(progressChan)
	displayWg.Wait()

	for _, t := range tallies {
		res.Count += t.count
		res.Tested += t.tested
		res.Largest = max(res.Largest, t.largest)
	}
	res.Duration = time.Since(start)
	return res, err
}

func sweepShare(ctx context.Context, from, to uint64, index int, tester PrimalityTester, progressChan chan<- ProgressUpdate, tally *workerTally) error {
	total := float64(to - from)
	for n := from; n < to; {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := to
		if to-n > sweepChunk {
			end = n + sweepChunk
		}
		for ; n < end; n++ {
			if tester.IsPrime(n) {
				tally.count++
				tally.largest = n
			}
		}
		tally.tested = n - from
		if n == to {
			break
		}
		select {
		case progressChan <- ProgressUpdate{WorkerIndex: index, Value: float64(n-from) / total}:
		default:
		}
	}
	// Intermediate updates may be dropped; the final one is not, so the
	// display ends at 100%.
	select {
	case progressChan <- ProgressUpdate{WorkerIndex: index, Value: 1}:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
