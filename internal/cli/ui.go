//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/natcalc/internal/format"
	"github.com/agbru/natcalc/internal/orchestration"
)

const (
	// TruncationLimit is the digit count above which values are shortened
	// on the terminal unless --verbose is set.
	TruncationLimit = 100
	// DisplayEdges is the number of leading and trailing digits kept when a
	// value is shortened.
	DisplayEdges = 25
	// ProgressRefreshRate is the redraw period of the spinner and bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in characters.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with the mean progress of numWorkers
// workers and an ETA until progressChan is closed, then calls wg.Done.
// With no workers it only drains the channel.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numWorkers int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numWorkers)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + format.FormatProgressBarWithETA(0, 0, ProgressBarWidth))
	s.Start()
	defer func() {
		s.Stop()
		fmt.Fprintf(out, "%s\n", format.FormatProgressBarWithETA(agg.CalculateAverage(), 0, ProgressBarWidth))
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(" " + format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), ProgressBarWidth))
		}
	}
}

// CalibrationProgress shows a spinner labelled with the crossover being
// measured. Step matches calibration.Options.OnStep.
type CalibrationProgress struct {
	s     Spinner
	start time.Time
}

// NewCalibrationProgress starts a spinner on out.
func NewCalibrationProgress(out io.Writer) *CalibrationProgress {
	p := &CalibrationProgress{s: newSpinner(spinner.WithWriter(out)), start: time.Now()}
	p.s.UpdateSuffix(" calibrating...")
	p.s.Start()
	return p
}

// Step reports that done of total measurements are finished.
func (p *CalibrationProgress) Step(done, total int, label string) {
	eta := time.Duration(0)
	if done > 0 && done < total {
		eta = time.Since(p.start) / time.Duration(done) * time.Duration(total-done)
	}
	p.s.UpdateSuffix(fmt.Sprintf(" %-16s %s", label,
		format.FormatProgressBarWithETA(float64(done)/float64(max(total, 1)), eta, ProgressBarWidth)))
}

// Stop halts the spinner.
func (p *CalibrationProgress) Stop() { p.s.Stop() }
