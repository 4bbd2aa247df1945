package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

// bigFromU converts u to a math/big.Int via its decimal text form, giving
// differential and property tests an oracle that never shares code with
// the package under test.
func bigFromU(t *testing.T, u U) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(u.String(), 10)
	if !ok {
		t.Fatalf("big.Int.SetString(%q) failed", u.String())
	}
	return v
}

// uFromBig converts a non-negative math/big.Int to a U via its decimal
// text form.
func uFromBig(t *testing.T, v *big.Int) U {
	t.Helper()
	return mustParseU(t, v.String())
}

// sFromBig converts an arbitrary math/big.Int to an S via its decimal
// text form.
func sFromBig(t *testing.T, v *big.Int) S {
	t.Helper()
	s, err := ParseS(v.String())
	if err != nil {
		t.Fatalf("ParseS(%q) error: %v", v.String(), err)
	}
	return s
}

// randomBigInt returns a pseudo-random non-negative integer with exactly
// digits decimal digits; the first digit is never zero, so the result is
// never 0 for digits >= 1.
func randomBigInt(rng *rand.Rand, digits int) *big.Int {
	if digits <= 0 {
		return big.NewInt(0)
	}
	b := make([]byte, digits)
	b[0] = byte('1' + rng.Intn(9))
	for i := 1; i < digits; i++ {
		b[i] = byte('0' + rng.Intn(10))
	}
	v, ok := new(big.Int).SetString(string(b), 10)
	if !ok {
		panic("randomBigInt: SetString failed")
	}
	return v
}
