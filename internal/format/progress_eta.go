package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates produced from a very slow early rate.
const maxETA = 24 * time.Hour

// ProgressState tracks the progress of a fixed number of workers, each in
// [0, 1], and reports their mean.
type ProgressState struct {
	progresses []float64
	numWorkers int
}

// NewProgressState returns a state for numWorkers workers at zero progress.
func NewProgressState(numWorkers int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, max(numWorkers, 0)),
		numWorkers: numWorkers,
	}
}

// Update records value for worker index, clamped to [0, 1]. Out-of-range
// indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean progress of all workers.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numWorkers <= 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numWorkers)
}

// ProgressWithETA extends ProgressState with an estimate of the remaining
// time, derived from the mean progress rate since creation.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	progressRate float64 // fraction per second
}

// NewProgressWithETA returns a tracker for numWorkers workers whose clock
// starts now.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numWorkers),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records value for worker index and returns the new mean
// progress with the refreshed estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()
	if elapsed := time.Since(p.startTime).Seconds(); avg > 0 && elapsed > 0 {
		p.progressRate = avg / elapsed
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated remaining time, or 0 while no rate is known
// or the work is complete.
func (p *ProgressWithETA) GetETA() time.Duration {
	avg := p.CalculateAverage()
	if p.progressRate <= 0 || avg <= 0 || avg >= 1 {
		return 0
	}
	eta := time.Duration((1 - avg) / p.progressRate * float64(time.Second))
	return min(eta, maxETA)
}

// FormatETA renders an estimate compactly: "45s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m, s := int(eta.Minutes()), int(eta.Seconds())%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h, m := int(eta.Hours()), int(eta.Minutes())%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders progress, clamped to [0, 1], as a bar of length
// runes.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar]  42.0% ETA: 1m5s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	etaText := FormatETA(eta)
	if progress >= 1 {
		etaText = "done"
	}
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, etaText)
}
