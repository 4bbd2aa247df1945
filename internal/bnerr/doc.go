// Package bnerr defines the structured error taxonomy for the bignum
// engine: a single PreconditionViolation type covering every failure mode
// the specification calls out (malformed text, negative-into-U, subtraction
// underflow, decrement of zero, division/modulus by zero, FFT operands
// over the transform length cap, negative-signed-to-unsigned conversion).
//
// Error Wrapping Guidelines:
// A PreconditionViolation carries an optional underlying cause (set by
// Wrap) and implements Unwrap() so callers can use errors.Is() and
// errors.As() against the wrapped cause, if any.
package bnerr
