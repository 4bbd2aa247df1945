package config

import (
	"os"
	"runtime"
	"strconv"
)

// EstimateOptimalFFTWordHint provides a heuristic, non-functional hint for
// how many limbs of transform scratch a caller may want to pre-size before
// issuing a large multiplication, based on coarse hardware
// characteristics. It never overrides BruteforceThreshold or
// TransformLimit, which are fixed by algorithm correctness: this is a
// sizing hint only, not an algorithm-selection threshold, and no package
// in this module calls it.
//
// The BIGNUM_FFT_WORD_HINT environment variable, if set to a valid
// positive integer, overrides the heuristic entirely.
func EstimateOptimalFFTWordHint() int {
	if v := os.Getenv(EnvPrefix + "FFT_WORD_HINT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}

	wordSize := 32 << (^uint(0) >> 63)
	numCPU := runtime.NumCPU()

	base := 1 << 16 // 64K limbs
	if wordSize == 64 {
		base = 1 << 18 // 256K limbs
	}
	switch {
	case numCPU <= 2:
		return base / 2
	case numCPU <= 8:
		return base
	default:
		return base * 2
	}
}
