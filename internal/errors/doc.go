// Package apperrors defines the error types shared by the command layer and
// the arithmetic kernel.
//
// Kernel routines never return errors: they panic with PreconditionError
// when a caller breaks their contract. Commands validate operands up front
// (ValidationError), recover any remaining PreconditionError into a
// CalculationError with RecoverPrecondition, and map the final error to a
// process exit status with ExitCode. Every wrapper supports errors.Is and
// errors.As.
package apperrors
