// Package orchestration runs the concurrent parts of natcalc: the prime
// range sweep, which splits a range across workers, and the division
// cross-check, which runs several division algorithms on the same operands
// and compares their results. Progress and results reach the user through
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
