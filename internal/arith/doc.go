// Package arith implements the limb-level primitives shared by the
// division and public bignum packages: comparison, addition, subtraction,
// increment/decrement, power-of-Base shifting, schoolbook multiplication,
// and the schoolbook/transform multiply dispatch used throughout the
// engine. Every operation here preserves the canonical form invariant on
// the buffers it returns.
package arith
