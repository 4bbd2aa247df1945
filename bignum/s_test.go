package bignum

import (
	"testing"

	"github.com/agbru/bignum/internal/bnerr"
)

func mustParseS(t *testing.T, s string) S {
	t.Helper()
	v, err := ParseS(s)
	if err != nil {
		t.Fatalf("ParseS(%q) error: %v", s, err)
	}
	return v
}

func TestParseSRoundTrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0", "0"},
		{"-0", "0"},
		{"42", "42"},
		{"-42", "-42"},
		{"-000042", "-42"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, c := range cases {
		if got := mustParseS(t, c.in).String(); got != c.want {
			t.Errorf("ParseS(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseSRejectsBareSign(t *testing.T) {
	for _, in := range []string{"-", ""} {
		if _, err := ParseS(in); err == nil {
			t.Errorf("ParseS(%q): expected error", in)
		}
	}
}

func TestSSignAndAbs(t *testing.T) {
	pos := mustParseS(t, "5")
	neg := mustParseS(t, "-5")
	zero := SZero()
	if pos.Sign() != 1 || neg.Sign() != -1 || zero.Sign() != 0 {
		t.Fatalf("Sign: got %d/%d/%d, want 1/-1/0", pos.Sign(), neg.Sign(), zero.Sign())
	}
	if !neg.Abs().Equal(pos) {
		t.Errorf("Abs(-5) = %s, want 5", neg.Abs())
	}
	if !pos.Neg().Equal(neg) {
		t.Errorf("Neg(5) = %s, want -5", pos.Neg())
	}
	if !zero.Neg().Equal(zero) || zero.Neg().Sign() != 0 {
		t.Errorf("Neg(0) must stay non-negative zero, got %s", zero.Neg())
	}
}

func TestSCmp(t *testing.T) {
	neg5 := mustParseS(t, "-5")
	neg3 := mustParseS(t, "-3")
	pos3 := mustParseS(t, "3")
	if !neg5.Less(neg3) {
		t.Error("-5 should be < -3")
	}
	if !neg3.Less(pos3) {
		t.Error("-3 should be < 3")
	}
	if !neg3.Equal(mustParseS(t, "-3")) {
		t.Error("-3 should equal -3")
	}
}

func TestSAddSameSign(t *testing.T) {
	a := mustParseS(t, "-10")
	b := mustParseS(t, "-15")
	got := a.Add(b)
	if got.String() != "-25" {
		t.Errorf("-10 + -15 = %s, want -25", got)
	}
}

func TestSAddDifferentSignTakesLargerMagnitudeSign(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"10", "-15", "-5"},
		{"-10", "15", "5"},
		{"10", "-10", "0"},
	}
	for _, c := range cases {
		got := mustParseS(t, c.a).Add(mustParseS(t, c.b))
		if got.String() != c.want {
			t.Errorf("%s + %s = %s, want %s", c.a, c.b, got, c.want)
		}
		if c.want == "0" && got.Sign() != 0 {
			t.Errorf("%s + %s produced a negative zero", c.a, c.b)
		}
	}
}

func TestSSub(t *testing.T) {
	a := mustParseS(t, "5")
	b := mustParseS(t, "8")
	got := a.Sub(b)
	if got.String() != "-3" {
		t.Errorf("5 - 8 = %s, want -3", got)
	}
}

func TestSMulSignRules(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"3", "4", "12"},
		{"-3", "4", "-12"},
		{"3", "-4", "-12"},
		{"-3", "-4", "12"},
		{"0", "-4", "0"},
		{"-3", "0", "0"},
	}
	for _, c := range cases {
		got, err := mustParseS(t, c.a).Mul(mustParseS(t, c.b))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != c.want {
			t.Errorf("%s * %s = %s, want %s", c.a, c.b, got, c.want)
		}
		if c.want == "0" && got.Sign() != 0 {
			t.Errorf("%s * %s produced a negative zero", c.a, c.b)
		}
	}
}

func TestSDivModKnownResult(t *testing.T) {
	// spec.md §8.3 scenario 6: parse("-5") % parse("3") == "-2", and
	// (parse("-5") / parse("3")) * parse("3") + "-2" == "-5".
	a := mustParseS(t, "-5")
	b := mustParseS(t, "3")
	q, r, err := a.DivMod(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.String() != "-2" {
		t.Errorf("-5 %% 3 = %s, want -2", r)
	}
	prod, err := q.Mul(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reconstructed := prod.Add(r)
	if !reconstructed.Equal(a) {
		t.Errorf("(-5/3)*3 + (-5%%3) = %s, want -5", reconstructed)
	}
}

func TestSDivModByZero(t *testing.T) {
	a := mustParseS(t, "5")
	_, _, err := a.DivMod(SZero())
	if err == nil {
		t.Fatal("expected divide-by-zero error")
	}
	pv, ok := err.(*bnerr.PreconditionViolation)
	if !ok || pv.Kind != bnerr.KindDivideByZero {
		t.Fatalf("expected KindDivideByZero, got %v", err)
	}
}

func TestSUint64NegativeFails(t *testing.T) {
	_, err := mustParseS(t, "-5").Uint64()
	if err == nil {
		t.Fatal("expected negative-magnitude error")
	}
	pv, ok := err.(*bnerr.PreconditionViolation)
	if !ok || pv.Kind != bnerr.KindNegativeMagnitude {
		t.Fatalf("expected KindNegativeMagnitude, got %v", err)
	}
}

func TestSFromInt64MinInt64(t *testing.T) {
	const minInt64 = -9223372036854775808
	s := SFromInt64(minInt64)
	if s.String() != "-9223372036854775808" {
		t.Errorf("SFromInt64(MinInt64) = %s, want -9223372036854775808", s)
	}
}

func TestSIsZeroAndMagnitude(t *testing.T) {
	z := SZero()
	if !z.IsZero() {
		t.Error("SZero() should be zero")
	}
	m := mustParseS(t, "-42").Magnitude()
	if m.String() != "42" {
		t.Errorf("Magnitude(-42) = %s, want 42", m)
	}
}
