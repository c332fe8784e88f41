// Package format holds the pure string formatting shared by the CLI and the
// orchestration layer: durations, rates, digit grouping and progress bars
// with a remaining-time estimate.
package format
