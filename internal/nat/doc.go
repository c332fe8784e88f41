// Package nat implements arithmetic on arbitrary-precision unsigned integers
// stored as little-endian word vectors.
//
// The package offers two layers. Nat values (Add, Sub, Mul, DivMod, Invert)
// allocate their results and never alias their inputs. The word-vector layer
// (AddTo, SubInPlaceLeft, DivRemWord, DivSchoolbook, DivModTo, ...) writes
// into caller-supplied buffers whose minimum lengths are part of each
// function's contract; recursive routines take a scratch buffer sized by the
// matching ScratchLen function.
//
// Contract violations (short buffers, zero or unnormalized divisors,
// forbidden overlap) panic with errors.PreconditionError before any output is
// written. Nothing in the package returns an error value or keeps mutable
// state between calls; algorithm crossovers are carried by the Thresholds
// value, and DefaultThresholds returns the tuned defaults for the word size.
//
// The word size is 64 bits unless the package is built with the word32 tag.
package nat
