package bignum

import (
	"math"
	"strings"

	"github.com/agbru/bignum/internal/bnerr"
	"github.com/agbru/bignum/internal/config"
)

// S is an arbitrary-precision signed integer: a (magnitude, negative)
// pair with no representation for negative zero. The zero value is ready
// to use and represents 0. Grounded on Integer.h's SignedInteger class.
type S struct {
	magnitude U
	negative  bool
}

// normalize clears the negative flag whenever the magnitude is zero, the
// invariant every SignedInteger mutation point enforces.
func normalize(m U, negative bool) S {
	if m.IsZero() {
		negative = false
	}
	return S{magnitude: m, negative: negative}
}

// SZero returns the canonical signed zero.
func SZero() S { return S{} }

// SFromUint64 returns a non-negative S holding v.
func SFromUint64(v uint64) S { return S{magnitude: FromUint64(v)} }

// SFromInt64 splits v into (|v|, v<0).
func SFromInt64(v int64) S {
	if v < 0 {
		// Handles math.MinInt64 correctly: -v overflows back to v itself
		// as int64, but the uint64 cast below yields the true magnitude
		// because Go's two's-complement negation-then-cast matches.
		return normalize(FromUint64(uint64(-v)), true)
	}
	return normalize(FromUint64(uint64(v)), false)
}

// SFromFloat64 splits the finite value v into (|v|, v<0).
func SFromFloat64(v float64) (S, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return S{}, bnerr.New("bignum.SFromFloat64", bnerr.KindMalformedText,
			"cannot construct a signed integer from a non-finite value")
	}
	neg := math.Signbit(v) && v != 0
	m, err := FromFloat64(math.Abs(v))
	if err != nil {
		return S{}, err
	}
	return normalize(m, neg), nil
}

// SFromU returns a non-negative S wrapping m.
func SFromU(m U) S { return S{magnitude: m} }

// ParseS parses an optionally '-'-prefixed decimal string into a signed
// integer.
func ParseS(s string) (S, error) {
	if config.Validate && len(s) == 0 {
		return S{}, bnerr.New("bignum.ParseS", bnerr.KindMalformedText, "input is empty")
	}
	neg := false
	digits := s
	if len(s) > 0 && s[0] == '-' {
		neg = true
		digits = s[1:]
	}
	m, err := ParseU(digits)
	if err != nil {
		return S{}, err
	}
	return normalize(m, neg), nil
}

// IsZero reports whether s is the canonical signed zero.
func (s S) IsZero() bool { return s.magnitude.IsZero() }

// Sign returns -1, 0, or 1 according to s's sign.
func (s S) Sign() int {
	switch {
	case s.IsZero():
		return 0
	case s.negative:
		return -1
	default:
		return 1
	}
}

// Abs returns |s| as a non-negative S.
func (s S) Abs() S { return S{magnitude: s.magnitude} }

// Neg returns -s, normalized so zero stays non-negative.
func (s S) Neg() S { return normalize(s.magnitude, !s.negative) }

// Magnitude returns s's unsigned magnitude.
func (s S) Magnitude() U { return s.magnitude }

// Cmp returns -1, 0, or 1 as s is less than, equal to, or greater than t.
// Grounded on SignedInteger's comparison operators: differing signs
// decide outright; equal signs compare magnitudes, reversed when both
// are negative.
func (s S) Cmp(t S) int {
	if s.negative != t.negative {
		if s.negative {
			return -1
		}
		return 1
	}
	c := s.magnitude.Cmp(t.magnitude)
	if s.negative {
		return -c
	}
	return c
}

// Equal reports whether s == t.
func (s S) Equal(t S) bool { return s.Cmp(t) == 0 }

// Less reports whether s < t.
func (s S) Less(t S) bool { return s.Cmp(t) < 0 }

// LessOrEqual reports whether s <= t.
func (s S) LessOrEqual(t S) bool { return s.Cmp(t) <= 0 }

// Greater reports whether s > t.
func (s S) Greater(t S) bool { return s.Cmp(t) > 0 }

// GreaterOrEqual reports whether s >= t.
func (s S) GreaterOrEqual(t S) bool { return s.Cmp(t) >= 0 }

// Add returns s+t. Grounded on SignedInteger::operator+=: same-sign
// operands add magnitudes and keep the shared sign; different-sign
// operands subtract the smaller magnitude from the larger and take the
// larger's sign.
func (s S) Add(t S) S {
	if s.negative == t.negative {
		return normalize(s.magnitude.Add(t.magnitude), s.negative)
	}
	if s.magnitude.GreaterOrEqual(t.magnitude) {
		diff, _ := s.magnitude.Sub(t.magnitude)
		return normalize(diff, s.negative)
	}
	diff, _ := t.magnitude.Sub(s.magnitude)
	return normalize(diff, t.negative)
}

// Sub returns s-t. Grounded on SignedInteger::operator-=, which inverts
// t's sign and adds.
func (s S) Sub(t S) S { return s.Add(t.Neg()) }

// Mul returns s*t. Grounded on SignedInteger::operator*=: magnitudes
// multiply, sign is the XOR of the operand signs, renormalized so a zero
// product is never negative.
func (s S) Mul(t S) (S, error) {
	m, err := s.magnitude.Mul(t.magnitude)
	if err != nil {
		return S{}, err
	}
	return normalize(m, s.negative != t.negative), nil
}

// DivMod returns (s/t, s%t) with truncating division: the quotient
// magnitude is ⌊|s|/|t|⌋ with sign = s.negative XOR t.negative; the
// remainder satisfies s == (s/t)*t + s%t and takes the sign of the
// dividend. Grounded on SignedInteger::operator/= and operator%=.
func (s S) DivMod(t S) (quotient, remainder S, err error) {
	qm, rm, err := s.magnitude.DivMod(t.magnitude)
	if err != nil {
		return S{}, S{}, err
	}
	q := normalize(qm, s.negative != t.negative)
	r := normalize(rm, s.negative)
	return q, r, nil
}

// Div returns s/t. See DivMod.
func (s S) Div(t S) (S, error) {
	q, _, err := s.DivMod(t)
	return q, err
}

// Mod returns s%t, defined as s - (s/t)*t (same sign as the dividend).
// See DivMod.
func (s S) Mod(t S) (S, error) {
	_, r, err := s.DivMod(t)
	return r, err
}

// Int64 evaluates |s| the same way U.Int64 does and negates the result
// when s is negative, matching the target-defined two's-complement
// reinterpretation of spec.md §6.2.
func (s S) Int64() int64 {
	v := s.magnitude.Int64()
	if s.negative {
		return -v
	}
	return v
}

// Uint64 requires s to be non-negative; a negative s raises a
// bnerr.KindNegativeMagnitude PreconditionViolation when config.Validate
// is true; with validation off the magnitude is returned unchanged
// (undefined per spec.md §6.5).
func (s S) Uint64() (uint64, error) {
	if config.Validate && s.negative {
		return 0, bnerr.New("bignum.S.Uint64", bnerr.KindNegativeMagnitude,
			"cannot convert a negative signed integer to an unsigned target")
	}
	return s.magnitude.Uint64(), nil
}

// Float64 evaluates |s| the same way U.Float64 does and negates the
// result when s is negative.
func (s S) Float64() float64 {
	v := s.magnitude.Float64()
	if s.negative {
		return -v
	}
	return v
}

// String renders s in decimal, prepending '-' only when s is negative
// and non-zero.
func (s S) String() string {
	if s.negative {
		var sb strings.Builder
		sb.WriteByte('-')
		sb.WriteString(s.magnitude.String())
		return sb.String()
	}
	return s.magnitude.String()
}
