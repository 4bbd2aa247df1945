package arith

import "github.com/agbru/bignum/internal/limb"

// ShiftRight returns a divided by Base^n, truncating the n least
// significant limbs. Grounded on UnsignedInteger::rightShift.
func ShiftRight(a limb.Buffer, n int) limb.Buffer {
	if n >= a.Len() {
		return limb.NewZero()
	}
	if n <= 0 {
		return a.Clone()
	}
	result := limb.New(a.Len() - n)
	for i := 0; i < result.Len(); i++ {
		result.SetLimb(i, a.Limb(i+n))
	}
	result.Canonicalize()
	return result
}

// ShiftLeft returns a multiplied by Base^n. Grounded on
// UnsignedInteger::leftShift.
func ShiftLeft(a limb.Buffer, n int) limb.Buffer {
	if n <= 0 || a.IsZero() {
		return a.Clone()
	}
	result := limb.NewClear(a.Len() + n)
	for i := 0; i < a.Len(); i++ {
		result.SetLimb(i+n, a.Limb(i))
	}
	return result
}
