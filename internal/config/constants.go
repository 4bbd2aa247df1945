// Package config holds the compile-time constants that govern the bignum
// engine's algorithm selection and resource limits, plus the environment
// variable overrides used by non-functional tuning (the ambient CLI/
// calibration collaborators around the engine — never the engine's
// arithmetic semantics, which have no runtime configuration per the
// specification).
package config

const (
	// EnvPrefix namespaces every environment variable this package reads.
	EnvPrefix = "BIGNUM_"

	// Base is the radix of one limb: 10^8.
	Base = 100000000

	// BruteforceThreshold (T_brute) is the limb-length threshold below
	// which schoolbook algorithms are preferred over transform-based or
	// Newton-iteration ones, for both multiplication and division.
	BruteforceThreshold = 64

	// TransformLimit (N_max) is the hard cap, in limbs, on either operand
	// of an FFT multiplication. Exceeding it is a PreconditionViolation.
	TransformLimit = 1 << 22

	// NewtonCorrectionBound is the expected maximum number of unit
	// correction steps each Newton-division quotient-refinement loop
	// needs; newtonDivMod reports an error only once a loop runs past
	// NewtonCorrectionBound+4 steps (see the Newton correction loop bound
	// decision in DESIGN.md).
	NewtonCorrectionBound = 2
)
