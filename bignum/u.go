package bignum

import (
	"math"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/bnerr"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/divide"
	"github.com/agbru/bignum/internal/limb"
)

// U is an arbitrary-precision, non-negative integer magnitude. The zero
// value is ready to use and represents 0; copying a U shares its
// underlying buffer, which is safe because no operation on U modifies a
// buffer in place.
// A single U is owner-confined: concurrent mutation of one instance from
// multiple goroutines is undefined, matching the confinement of the
// underlying decimal-limb buffer.
type U struct {
	buf limb.Buffer
}

// Zero returns the canonical zero magnitude.
func Zero() U { return U{buf: limb.NewZero()} }

// FromUint64 buckets v into base-B limbs.
func FromUint64(v uint64) U {
	if v == 0 {
		return Zero()
	}
	var limbs []uint32
	for v > 0 {
		limbs = append(limbs, uint32(v%config.Base))
		v /= config.Base
	}
	buf := limb.New(len(limbs))
	for i, l := range limbs {
		buf.SetLimb(i, l)
	}
	buf.Canonicalize()
	return U{buf: buf}
}

// FromInt64 takes the absolute value of v and buckets it into base-B
// limbs. It fails with a bnerr.KindNegativeMagnitude PreconditionViolation
// if v is negative and config.Validate is true; with validation off, a
// negative v is bucketed as if it were its unchecked magnitude
// conversion, which is undefined per spec.md §6.5.
func FromInt64(v int64) (U, error) {
	if v < 0 {
		if config.Validate {
			return U{}, bnerr.New("bignum.FromInt64", bnerr.KindNegativeMagnitude,
				"cannot construct an unsigned magnitude from negative value %d", v)
		}
		v = -v
	}
	return FromUint64(uint64(v)), nil
}

// FromFloat64 buckets the non-negative, finite value v into base-B limbs
// (⌊v/B^k⌋ mod B per limb). It fails if v is negative, NaN, or infinite.
func FromFloat64(v float64) (U, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return U{}, bnerr.New("bignum.FromFloat64", bnerr.KindMalformedText,
			"cannot construct a magnitude from a non-finite value")
	}
	if v < 0 {
		return U{}, bnerr.New("bignum.FromFloat64", bnerr.KindNegativeMagnitude,
			"cannot construct an unsigned magnitude from negative value %v", v)
	}
	v = math.Floor(v)
	if v == 0 {
		return Zero(), nil
	}
	var limbs []uint32
	for v >= 1 {
		rem := math.Mod(v, float64(config.Base))
		limbs = append(limbs, uint32(rem))
		v = math.Floor(v / float64(config.Base))
	}
	buf := limb.New(len(limbs))
	for i, l := range limbs {
		buf.SetLimb(i, l)
	}
	buf.Canonicalize()
	return U{buf: buf}, nil
}

// IsZero reports whether u is the canonical zero value.
func (u U) IsZero() bool { return u.buf.IsZero() }

// Limbs exposes the underlying base-B limbs, least-significant first, for
// callers that need direct access. Mutating the returned slice is not supported; treat it as
// read-only.
func (u U) Limbs() []uint32 { return u.buf.Limbs() }

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v.
func (u U) Cmp(v U) int { return arith.Compare(u.buf, v.buf) }

// Equal reports whether u == v.
func (u U) Equal(v U) bool { return u.Cmp(v) == 0 }

// Less reports whether u < v.
func (u U) Less(v U) bool { return u.Cmp(v) < 0 }

// LessOrEqual reports whether u <= v.
func (u U) LessOrEqual(v U) bool { return u.Cmp(v) <= 0 }

// Greater reports whether u > v.
func (u U) Greater(v U) bool { return u.Cmp(v) > 0 }

// GreaterOrEqual reports whether u >= v.
func (u U) GreaterOrEqual(v U) bool { return u.Cmp(v) >= 0 }

// Add returns u+v.
func (u U) Add(v U) U { return U{buf: arith.Add(u.buf, v.buf)} }

// Sub returns u-v. It requires u >= v; see arith.Sub for the
// config.Validate-gated precondition behavior.
func (u U) Sub(v U) (U, error) {
	r, err := arith.Sub("bignum.U.Sub", u.buf, v.buf)
	if err != nil {
		return U{}, err
	}
	return U{buf: r}, nil
}

// Inc returns u+1.
func (u U) Inc() U { return U{buf: arith.Inc(u.buf)} }

// Dec returns u-1. It requires u != 0; see arith.Dec for the
// config.Validate-gated precondition behavior.
func (u U) Dec() (U, error) {
	r, err := arith.Dec("bignum.U.Dec", u.buf)
	if err != nil {
		return U{}, err
	}
	return U{buf: r}, nil
}

// Mul returns u*v, dispatching to the schoolbook or transform-based
// multiplier according to config.BruteforceThreshold, mirroring
// UnsignedInteger::operator*=.
func (u U) Mul(v U) (U, error) {
	m := arith.NewMultiplier()
	r, err := m.Multiply(u.buf, v.buf)
	if err != nil {
		return U{}, err
	}
	return U{buf: r}, nil
}

// DivMod returns (u/v, u%v) such that q*v+r == u and 0 <= r < v,
// dispatching to schoolbook long division or the Newton-iteration
// reciprocal divider according to config.BruteforceThreshold. It fails
// with bnerr.KindDivideByZero if v is zero and config.Validate is true.
func (u U) DivMod(v U) (quotient, remainder U, err error) {
	d := divide.New()
	q, r, err := d.DivMod("bignum.U.DivMod", u.buf, v.buf)
	if err != nil {
		return U{}, U{}, err
	}
	return U{buf: q}, U{buf: r}, nil
}

// Div returns u/v. See DivMod.
func (u U) Div(v U) (U, error) {
	q, _, err := u.DivMod(v)
	return q, err
}

// Mod returns u%v. See DivMod.
func (u U) Mod(v U) (U, error) {
	_, r, err := u.DivMod(v)
	return r, err
}

// Uint64 evaluates u in base B using Horner's method, wrapping around
// modulo 2^64 exactly as a uint64 target's own arithmetic would.
func (u U) Uint64() uint64 {
	var v uint64
	for i := u.buf.Len() - 1; i >= 0; i-- {
		v = v*config.Base + uint64(u.buf.Limb(i))
	}
	return v
}

// Int64 evaluates u the same way as Uint64 and reinterprets the result as
// a two's-complement int64, matching the target-defined wraparound of
// spec.md §6.2.
func (u U) Int64() int64 { return int64(u.Uint64()) }

// Float64 evaluates u in base B using Horner's method, producing an
// IEEE-754 double that may overflow to +Inf for sufficiently large u.
func (u U) Float64() float64 {
	var v float64
	for i := u.buf.Len() - 1; i >= 0; i-- {
		v = v*float64(config.Base) + float64(u.buf.Limb(i))
	}
	return v
}
