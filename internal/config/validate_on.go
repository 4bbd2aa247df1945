//go:build !novalidate

package config

// Validate is the compile-time precondition-check switch of the
// specification (§6.5). Building with the default tag set keeps
// precondition checks enabled: malformed input, negative-into-U,
// subtraction underflow, decrement of zero, div/mod by zero, and
// FFT operands over TransformLimit all raise a typed error.
//
// Build with -tags novalidate to flip this to false and skip the checks
// (undefined behavior on a violated precondition, traded for the cost of
// the check).
const Validate = true
