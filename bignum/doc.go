// Package bignum implements arbitrary-precision integer arithmetic: an
// unsigned magnitude type U built on a decimal-limb buffer, schoolbook and
// transform-based multiplication, and Newton-iteration division, plus a
// signed wrapper S carrying a (magnitude, negative) pair. See the
// top-level design notes for the algorithms each operation is grounded
// on; this package wires internal/limb, internal/codec, internal/arith,
// internal/fftmul, internal/divide, internal/transform and internal/bnerr
// into the public U/S API.
package bignum
