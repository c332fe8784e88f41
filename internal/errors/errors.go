package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit statuses reported by cmd/natcalc.
const (
	ExitSuccess       = 0   // The command completed.
	ExitErrorGeneric  = 1   // The command failed for any other reason.
	ExitErrorTimeout  = 2   // The command exceeded its --timeout.
	ExitErrorMismatch = 3   // Cross-checked algorithms disagreed.
	ExitErrorConfig   = 4   // Flags, environment or operands were invalid.
	ExitErrorCanceled = 130 // The command was interrupted (SIGINT).
)

// ConfigError reports an invalid flag, environment override or calibration
// setting. The command cannot start.
type ConfigError struct {
	// Message explains which setting is wrong.
	Message string
}

// Error returns the message.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a fmt.Sprintf message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure raised while an arithmetic command runs,
// most often a kernel PreconditionError recovered at the command boundary.
type CalculationError struct {
	// Cause is the underlying failure.
	Cause error
}

// Error returns the message of the cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that a command ran past its deadline.
type TimeoutError struct {
	// Operation names the command that timed out.
	Operation string
	// Limit is the deadline that was exceeded.
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports an operand the kernel cannot accept, such as a
// zero divisor or a residue not below its modulus. The command layer checks
// operands and returns this error before calling the kernel.
type ValidationError struct {
	// Field names the offending operand.
	Field string
	// Message explains the problem.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// PreconditionError describes a violated contract of an arithmetic kernel
// routine: a zero divisor, an undersized output buffer, an unnormalized
// divisor or mismatched operand lengths. Kernel routines panic with this
// value; it is never returned from a well-formed call.
type PreconditionError struct {
	// Op is the name of the routine whose contract was violated.
	Op string
	// Message describes the violated requirement.
	Message string
}

func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Message)
}

// RecoverPrecondition converts a PreconditionError panic into a
// CalculationError stored in *errp. Any other panic value is re-raised.
// It must be called directly by a deferred statement:
//
//	defer apperrors.RecoverPrecondition(&err)
func RecoverPrecondition(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if pe, ok := r.(PreconditionError); ok {
		*errp = CalculationError{Cause: pe}
		return
	}
	panic(r)
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from context cancellation or a
// deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		timeoutErr    TimeoutError
		mismatchErr   MismatchError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// MismatchError reports that two algorithms produced different results
// for the same operands.
type MismatchError struct {
	// Algorithms names the two disagreeing algorithms.
	Algorithms [2]string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch between %s and %s", e.Algorithms[0], e.Algorithms[1])
}
