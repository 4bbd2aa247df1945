package arith

import "github.com/agbru/bignum/internal/limb"

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b. Both buffers must already be canonical.
func Compare(a, b limb.Buffer) int {
	if a.Len() != b.Len() {
		if a.Len() < b.Len() {
			return -1
		}
		return 1
	}
	for i := a.Len() - 1; i >= 0; i-- {
		av, bv := a.Limb(i), b.Limb(i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether a < b.
func Less(a, b limb.Buffer) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b limb.Buffer) bool { return Compare(a, b) <= 0 }

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b limb.Buffer) bool { return Compare(a, b) >= 0 }
