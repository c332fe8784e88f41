package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d in µs below a millisecond, in ms below a
// second and with time.Duration.String otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatRate renders count operations over d as a per-second rate.
func FormatRate(count uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(count) / d.Seconds()
	switch {
	case rate >= 1e6:
		return fmt.Sprintf("%.2fM/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.2fk/s", rate/1e3)
	}
	return fmt.Sprintf("%.0f/s", rate)
}
