// Package logging provides the structured logging interface used by the
// command layer, calibration and the range sweep. The arithmetic kernel
// never logs.
package logging
