package transform

import (
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/rs/zerolog"
)

// Engine owns a growable twiddle-factor cache and the scalar DIF/DIT
// butterfly and Hermitian pointwise-multiply kernels built on top of it.
// The zero value is not ready for use; call New.
type Engine struct {
	// Logger receives debug-level events for twiddle-table regrowth.
	// Defaults to a no-op logger.
	Logger zerolog.Logger

	twiddles []complex128 // twiddles[0] is unused filler, matching the reference layout
	length   uint32        // number of valid entries: cache covers transform sizes up to 2*length
}

// New returns an Engine with the minimal twiddle cache (a single entry
// representing angle zero, valid for a transform of size up to 2).
func New() *Engine {
	return &Engine{
		Logger:   zerolog.Nop(),
		twiddles: []complex128{1},
		length:   1,
	}
}

// log2 returns floor(log2(n)) for n > 0.
func log2(n uint32) uint32 {
	return uint32(bits.Len32(n) - 1)
}

// TransformLengthFor returns the smallest power of two N >= 2 such that
// N >= resultLength, sized for an FFT convolution whose raw output needs
// resultLength limbs (a+b limb counts); each complex sample carries one
// limb as two base-10^4 half-limbs.
func TransformLengthFor(resultLength uint32) uint32 {
	if resultLength <= 1 {
		return 2
	}
	return 2 << log2(resultLength-1)
}

// EnsureSize grows the twiddle cache, if needed, to cover a transform of
// size transformLength. Growth happens in place using a cumulative
// double-step angle recursion (outer steps of pi/H, inner steps of
// pi/H^2, H = 2^(floor(log2 transformLength)/2)) so the number of
// trigonometric evaluations stays O(sqrt(transformLength)) rather than
// O(transformLength).
func (e *Engine) EnsureSize(transformLength uint32) {
	if transformLength <= e.length<<1 {
		return
	}
	halfLog := log2(transformLength) >> 1
	halfSize := uint32(1) << halfLog

	baseFactors := make([]complex128, halfSize<<1)
	angleStep := math.Pi / float64(halfSize)
	fineAngleStep := angleStep / float64(halfSize)
	j := (halfSize * 3) >> 1
	phaseAccumulator := uint32(0)
	for i := uint32(0); i != halfSize; {
		baseFactors[i] = cmplx.Rect(1, float64(phaseAccumulator)*angleStep)
		baseFactors[i|halfSize] = cmplx.Rect(1, float64(phaseAccumulator)*fineAngleStep)
		i++
		phaseAccumulator -= halfSize - (j >> bits.TrailingZeros32(i))
	}

	newFactors := make([]complex128, transformLength>>1)
	copy(newFactors, e.twiddles)
	for i := e.length; i != transformLength>>1; i++ {
		newFactors[i] = baseFactors[i&(halfSize-1)] * baseFactors[halfSize|(i>>halfLog)]
	}
	e.twiddles = newFactors

	e.Logger.Debug().Uint32("from", e.length).Uint32("to", transformLength>>1).Msg("twiddle cache grown")
	e.length = transformLength >> 1
}

// Forward runs the in-place decimation-in-frequency FFT of data (length n,
// a power of two). The result is in bit-reversed order; Inverse expects
// its input in that same order.
func (e *Engine) Forward(data []complex128, n uint32) {
	for blockSize, stepSize := n>>1, n; blockSize != 0; stepSize, blockSize = blockSize, blockSize>>1 {
		for i := uint32(0); i < blockSize; i++ {
			even, odd := data[i], data[i+blockSize]
			data[i] = even + odd
			data[i+blockSize] = even - odd
		}
		for blockStart, twIdx := stepSize, uint32(1); blockStart < n; blockStart, twIdx = blockStart+stepSize, twIdx+1 {
			tw := e.twiddles[twIdx]
			for i := blockStart; i < blockStart+blockSize; i++ {
				even, odd := data[i], data[i+blockSize]*tw
				data[i] = even + odd
				data[i+blockSize] = even - odd
			}
		}
	}
}

// Inverse runs the in-place decimation-in-time inverse FFT of data (length
// n, a power of two), restoring natural order. It does not scale by 1/n;
// callers normalize as part of the pointwise multiply.
func (e *Engine) Inverse(data []complex128, n uint32) {
	for blockSize, stepSize := uint32(1), uint32(2); blockSize != n; blockSize, stepSize = stepSize, stepSize<<1 {
		for i := uint32(0); i < blockSize; i++ {
			even, odd := data[i], data[i+blockSize]
			data[i] = even + odd
			data[i+blockSize] = even - odd
		}
		for blockStart, twIdx := stepSize, uint32(1); blockStart < n; blockStart, twIdx = blockStart+stepSize, twIdx+1 {
			tw := cmplx.Conj(e.twiddles[twIdx])
			for i := blockStart; i < blockStart+blockSize; i++ {
				even, odd := data[i], data[i+blockSize]
				data[i] = even + odd
				data[i+blockSize] = (even - odd) * tw
			}
		}
	}
}

func complexMultiplySpecial(first, second complex128) complex128 {
	r1, i1 := real(first), imag(first)
	r2, i2 := real(second), imag(second)
	return complex(r1*r2+i1*i2, r1*i2+i1*r2)
}

// PointwiseMultiply recombines the Hermitian-symmetric spectra packed into
// a and b (each the forward transform of a real+i*real packing of two
// operand sequences) and overwrites a with the normalized product. Index 0
// and 1 hold the paired DC/Nyquist terms and are handled specially; the
// remaining octave-doubled blocks are decomposed into even/odd conjugate
// pairs, multiplied with a twiddle-scaled product, and written back at
// both the forward and backward index with appropriate conjugation.
func (e *Engine) PointwiseMultiply(a, b []complex128, n uint32) {
	norm := 1.0 / float64(n)
	scale := norm * 0.25

	a[0] = complexMultiplySpecial(a[0], b[0]) * complex(norm, 0)
	a[1] = (a[1] * b[1]) * complex(norm, 0)

	for blockStart, blockEnd := uint32(2), uint32(3); blockStart != n; blockStart, blockEnd = blockStart<<1, blockEnd<<1 {
		for fwd, bwd := blockStart, blockStart+blockStart-1; fwd != blockEnd; fwd, bwd = fwd+1, bwd-1 {
			firstEven := a[fwd] + cmplx.Conj(a[bwd])
			firstOdd := a[fwd] - cmplx.Conj(a[bwd])
			secondEven := b[fwd] + cmplx.Conj(b[bwd])
			secondOdd := b[fwd] - cmplx.Conj(b[bwd])

			tw := e.twiddles[fwd>>1]
			if fwd&1 != 0 {
				tw = -tw
			}

			productA := firstEven*secondEven - firstOdd*secondOdd*tw
			productB := secondEven*firstOdd + firstEven*secondOdd

			a[fwd] = (productA + productB) * complex(scale, 0)
			a[bwd] = cmplx.Conj((productA - productB) * complex(scale, 0))
		}
	}
}
