// Package cli renders natcalc results, progress and shell completion
// scripts on the terminal, and runs the interactive REPL.
package cli
