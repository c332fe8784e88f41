// Package ui holds the color themes of natcalc: ANSI escape codes for
// tabular output and lipgloss styles for verdicts and summaries. NO_COLOR
// and --no-color select a theme without colors.
package ui
