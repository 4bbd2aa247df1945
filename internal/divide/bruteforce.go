package divide

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
)

// estimatedValue approximates the top three limbs of buf (around
// highIndex, bounded by arrayLength) as a single scaled integer.
// BruteforceDivMod divides the remainder's value by the divisor's value
// plus one, so its guess never exceeds the true partial quotient digit.
// Grounded on bruteforceDivisionAndModulus's getEstimatedValue lambda.
func estimatedValue(buf limb.Buffer, highIndex, arrayLength int) uint64 {
	var high uint32
	if highIndex+1 < arrayLength {
		high = buf.Limb(highIndex + 1)
	}
	var low uint32
	if highIndex > 0 {
		low = buf.Limb(highIndex - 1)
	}
	return uint64(10)*config.Base*uint64(high) + uint64(10)*uint64(buf.Limb(highIndex)) + uint64(low)/(config.Base/10)
}

// BruteforceDivMod computes a/b and a%b by schoolbook long division: each
// quotient limb is estimated from the top three limbs of the working
// remainder and the divisor (an estimate that never overshoots), applied
// by repeated multiply-subtract passes until the estimate reaches zero,
// and refined by at most one further unit correction. Grounded on
// UnsignedInteger::bruteforceDivisionAndModulus.
func BruteforceDivMod(a, b limb.Buffer) (quotient, remainder limb.Buffer) {
	if arith.Less(a, b) {
		return limb.NewZero(), a.Clone()
	}

	la, lb := a.Len(), b.Len()
	quotient = limb.NewClear(la - lb + 1)
	remainder = limb.NewClear(la + 1) // one spare high limb for a carry that the invariant guarantees stays zero
	for i := 0; i < la; i++ {
		remainder.SetLimb(i, a.Limb(i))
	}

	for currentPosition := la - lb; currentPosition >= 0; currentPosition-- {
		var partialQuotient uint32

		performSubtraction := func() {
			var carry int64
			for digitIndex := 0; digitIndex < lb; digitIndex++ {
				carry += -int64(partialQuotient)*int64(b.Limb(digitIndex)) + int64(remainder.Limb(currentPosition+digitIndex))
				v := carry % config.Base
				carry /= config.Base
				if v < 0 {
					v += config.Base
					carry--
				}
				remainder.SetLimb(currentPosition+digitIndex, uint32(v))
			}
			if carry != 0 {
				idx := currentPosition + lb
				remainder.SetLimb(idx, uint32(int64(remainder.Limb(idx))+carry))
			}
			quotient.SetLimb(currentPosition, quotient.Limb(currentPosition)+partialQuotient)
		}

		quotient.SetLimb(currentPosition, 0)
		for {
			num := estimatedValue(remainder, currentPosition+lb-1, la)
			den := estimatedValue(b, lb-1, lb) + 1
			partialQuotient = uint32(num / den)
			if partialQuotient == 0 {
				break
			}
			performSubtraction()
		}

		partialQuotient = 1
		for digitIndex := lb - 1; digitIndex >= 0; digitIndex-- {
			if remainder.Limb(digitIndex+currentPosition) != b.Limb(digitIndex) {
				partialQuotient = 0
				if b.Limb(digitIndex) < remainder.Limb(digitIndex+currentPosition) {
					partialQuotient = 1
				}
				break
			}
		}
		if partialQuotient == 1 {
			performSubtraction()
		}
	}

	remainder.Resize(la)
	quotient.Canonicalize()
	remainder.Canonicalize()
	return quotient, remainder
}
