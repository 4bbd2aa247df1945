// Package cpuinfo probes coarse CPU feature availability to hint which
// scalar-vs-vectorized transform backend a caller may prefer. Only a
// scalar backend is implemented by internal/transform today; this package
// exists as the seam a SIMD backend would plug into, the way the
// teacher's internal/bigfft split arith_generic.go from arith_amd64.go by
// build tag rather than runtime probe.
package cpuinfo

import "golang.org/x/sys/cpu"

// Features summarizes the instruction-set extensions relevant to a future
// vectorized transform backend.
type Features struct {
	AVX2   bool
	AVX512 bool
	NEON   bool
}

// Probe inspects the running CPU and reports which relevant extensions it
// supports. It does not change behavior: internal/transform has only a
// scalar engine, and no other package in this module calls Probe.
func Probe() Features {
	return Features{
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F,
		NEON:   cpu.ARM64.HasASIMD,
	}
}

// PreferredBackend names the transform backend Probe's result would
// select, were more than one implemented. It always returns "scalar"
// today; the return value exists so callers and tests have a stable name
// to assert against as backends are added.
func (f Features) PreferredBackend() string {
	return "scalar"
}
