package arith

import (
	"github.com/agbru/bignum/internal/bnerr"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
)

// Add returns a+b. Grounded on UnsignedInteger::operator+= (limb-wise add
// with carry propagation into any remaining high limbs of the longer
// operand).
func Add(a, b limb.Buffer) limb.Buffer {
	if a.Len() < b.Len() {
		a, b = b, a
	}
	result := limb.New(a.Len() + 1)
	var carry uint64
	i := 0
	for ; i < b.Len(); i++ {
		carry += uint64(a.Limb(i)) + uint64(b.Limb(i))
		result.SetLimb(i, uint32(carry%config.Base))
		carry /= config.Base
	}
	for ; i < a.Len(); i++ {
		carry += uint64(a.Limb(i))
		result.SetLimb(i, uint32(carry%config.Base))
		carry /= config.Base
	}
	result.SetLimb(i, uint32(carry))
	result.Canonicalize()
	return result
}

// Sub returns a-b. It requires a >= b; when config.Validate is true,
// violating that precondition yields a PreconditionViolation with
// bnerr.KindUnderflow, grounded on UnsignedInteger::operator-='
// VALIDITY_CHECK. When config.Validate is false the check is skipped
// (per spec.md §6.5) and an out-of-range subtraction produces an
// undefined result rather than an error.
func Sub(op string, a, b limb.Buffer) (limb.Buffer, error) {
	if config.Validate && Less(a, b) {
		return limb.Buffer{}, bnerr.New(op, bnerr.KindUnderflow,
			"cannot subtract a larger value from a smaller one")
	}
	return SubUnchecked(a, b), nil
}

// SubUnchecked returns a-b without verifying a >= b first.
func SubUnchecked(a, b limb.Buffer) limb.Buffer {
	result := limb.New(a.Len())
	var borrow int64
	i := 0
	for ; i < b.Len(); i++ {
		v := int64(a.Limb(i)) - int64(b.Limb(i)) - borrow
		borrow = 0
		if v < 0 {
			v += config.Base
			borrow = 1
		}
		result.SetLimb(i, uint32(v))
	}
	for ; i < a.Len(); i++ {
		v := int64(a.Limb(i)) - borrow
		borrow = 0
		if v < 0 {
			v += config.Base
			borrow = 1
		}
		result.SetLimb(i, uint32(v))
	}
	result.Canonicalize()
	return result
}

// Inc returns a+1. Grounded on UnsignedInteger::operator++.
func Inc(a limb.Buffer) limb.Buffer {
	result := limb.New(a.Len() + 1)
	var carry uint64 = 1
	i := 0
	for ; i < a.Len(); i++ {
		carry += uint64(a.Limb(i))
		result.SetLimb(i, uint32(carry%config.Base))
		carry /= config.Base
	}
	result.SetLimb(i, uint32(carry))
	result.Canonicalize()
	return result
}

// Dec returns a-1. It requires a != 0; when config.Validate is true,
// violating that precondition yields a PreconditionViolation with
// bnerr.KindZeroDecrement, grounded on UnsignedInteger::operator--'s
// VALIDITY_CHECK. When config.Validate is false the check is skipped.
func Dec(op string, a limb.Buffer) (limb.Buffer, error) {
	if config.Validate && a.IsZero() {
		return limb.Buffer{}, bnerr.New(op, bnerr.KindZeroDecrement, "value is already zero")
	}
	return DecUnchecked(a), nil
}

// DecUnchecked returns a-1 without verifying a != 0 first.
func DecUnchecked(a limb.Buffer) limb.Buffer {
	result := a.Clone()
	var borrow int64 = 1
	for i := 0; i < result.Len() && borrow != 0; i++ {
		v := int64(result.Limb(i)) - borrow
		borrow = 0
		if v < 0 {
			v += config.Base
			borrow = 1
		}
		result.SetLimb(i, uint32(v))
	}
	result.Canonicalize()
	return result
}
