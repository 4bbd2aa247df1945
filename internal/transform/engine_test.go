package transform

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	for _, n := range []uint32{2, 4, 8, 16, 32, 64} {
		e := New()
		e.EnsureSize(n)

		original := make([]complex128, n)
		for i := range original {
			original[i] = complex(float64(i+1), float64(2*i-1))
		}
		data := append([]complex128(nil), original...)

		e.Forward(data, n)
		e.Inverse(data, n)

		for i := range data {
			want := original[i] * complex(float64(n), 0)
			if cmplx.Abs(data[i]-want) > 1e-6 {
				t.Fatalf("n=%d i=%d: got %v, want %v", n, i, data[i], want)
			}
		}
	}
}

func TestTransformLengthFor(t *testing.T) {
	cases := []struct {
		resultLength uint32
		want         uint32
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 4},
		{5, 8},
		{9, 16},
		{17, 32},
	}
	for _, c := range cases {
		if got := TransformLengthFor(c.resultLength); got != c.want {
			t.Errorf("TransformLengthFor(%d) = %d, want %d", c.resultLength, got, c.want)
		}
		if got := TransformLengthFor(c.resultLength); got < c.resultLength && c.resultLength > 1 {
			t.Errorf("TransformLengthFor(%d) = %d is smaller than result length", c.resultLength, got)
		}
	}
}

func TestEnsureSizeIsIdempotentAndMonotonic(t *testing.T) {
	e := New()
	e.EnsureSize(64)
	firstLen := len(e.twiddles)
	e.EnsureSize(64)
	if len(e.twiddles) != firstLen {
		t.Errorf("EnsureSize should be a no-op when already large enough")
	}
	e.EnsureSize(1024)
	if len(e.twiddles) <= firstLen {
		t.Errorf("EnsureSize(1024) did not grow the twiddle cache past the size for 64")
	}
}

func TestPointwiseMultiplyRealConvolutionViaHermitianPacking(t *testing.T) {
	// Pack two small real sequences each into their own complex buffer via
	// the real/imaginary half-limb split (real = low half, imag = high
	// half, base 2 here instead of 10^4 for a simple integer check), run
	// them through the forward transform, recombine via PointwiseMultiply,
	// and invert — the packed result must match direct convolution.
	const halfBase = 100.0

	a := []float64{3, 1, 4, 1} // treated as (low, high) pairs packed per-sample below
	b := []float64{2, 7, 1}

	n := TransformLengthFor(uint32(len(a) + len(b)))

	e := New()
	e.EnsureSize(n)

	bufA := make([]complex128, n)
	bufB := make([]complex128, n)
	for i, v := range a {
		bufA[i] = complex(math.Mod(v, halfBase), math.Floor(v/halfBase))
	}
	for i, v := range b {
		bufB[i] = complex(math.Mod(v, halfBase), math.Floor(v/halfBase))
	}

	e.Forward(bufA, n)
	e.Forward(bufB, n)
	e.PointwiseMultiply(bufA, bufB, n)
	e.Inverse(bufA, n)

	want := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			want[i+j] += av * bv
		}
	}

	for i, w := range want {
		got := real(bufA[i]) + imag(bufA[i])*halfBase
		if math.Abs(got-w) > 1e-3 {
			t.Fatalf("index %d: got %v, want %v", i, got, w)
		}
	}
}
