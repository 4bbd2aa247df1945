package divide

import (
	"context"
	"fmt"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/telemetry"
)

// computeInverse returns floor(Base^precisionBits / a), a fixed-point
// reciprocal of a good to precisionBits limbs. Below the bruteforce
// threshold it falls back to a direct division of the appropriate power
// of Base; above it, it recurses on a truncated, lower-precision estimate
// and refines it with one Newton step before decrementing to guarantee a
// lower bound. Grounded on UnsignedInteger::computeInverse.
func computeInverse(m *arith.Multiplier, a limb.Buffer, precisionBits int) (limb.Buffer, error) {
	la := a.Len()
	if la < config.BruteforceThreshold || precisionBits < la+config.BruteforceThreshold {
		numerator := limb.NewClear(precisionBits + 1)
		numerator.SetLimb(precisionBits, 1)
		q, _ := BruteforceDivMod(numerator, a)
		return q, nil
	}

	halfPrecision := (precisionBits - la + 5) >> 1
	shiftBack := 0
	if halfPrecision <= la {
		shiftBack = la - halfPrecision
	}
	truncated := arith.ShiftRight(a, shiftBack)
	newPrecision := halfPrecision + truncated.Len()

	approx, err := computeInverse(m, truncated, newPrecision)
	if err != nil {
		return limb.Buffer{}, err
	}

	doubled := arith.Add(approx, approx)
	leftShiftAmount := precisionBits - newPrecision - shiftBack
	leftShifted := arith.ShiftLeft(doubled, leftShiftAmount)

	aApprox, err := m.Multiply(a, approx)
	if err != nil {
		return limb.Buffer{}, err
	}
	aApproxSq, err := m.Multiply(aApprox, approx)
	if err != nil {
		return limb.Buffer{}, err
	}
	rightShiftAmount := 2*(newPrecision+shiftBack) - precisionBits
	correction := arith.ShiftRight(aApproxSq, rightShiftAmount)

	result, err := arith.Sub("divide.computeInverse", leftShifted, correction)
	if err != nil {
		return limb.Buffer{}, fmt.Errorf("Newton reciprocal step produced a negative intermediate: %w", err)
	}
	result, err = arith.Dec("divide.computeInverse", result)
	if err != nil {
		return limb.Buffer{}, fmt.Errorf("Newton reciprocal step produced a zero intermediate: %w", err)
	}
	return result, nil
}

// newtonDivMod computes a/b and a%b via a Newton-iteration reciprocal of
// b, refining the resulting quotient estimate with two correction loops
// (one downward, one upward), each failing once it runs past
// config.NewtonCorrectionBound+4 steps, to absorb the reciprocal's
// rounding error in either direction. Grounded on
// UnsignedInteger::divisionAndModulus.
func newtonDivMod(m *arith.Multiplier, mc *metrics.Collector, a, b limb.Buffer) (quotient, remainder limb.Buffer, err error) {
	_, span := telemetry.StartSpan(context.Background(), "divide.newton")
	defer span.End()

	la, lb := a.Len(), b.Len()
	precisionBits := la - lb + 5
	shiftBack := 0
	if precisionBits <= lb {
		shiftBack = lb - precisionBits
	}
	adjustedDivisor := arith.ShiftRight(b, shiftBack)
	if shiftBack != 0 {
		adjustedDivisor = arith.Inc(adjustedDivisor)
	}
	inversePrecision := precisionBits + adjustedDivisor.Len()

	inv, err := computeInverse(m, adjustedDivisor, inversePrecision)
	if err != nil {
		return limb.Buffer{}, limb.Buffer{}, err
	}

	product, err := m.Multiply(a, inv)
	if err != nil {
		return limb.Buffer{}, limb.Buffer{}, err
	}
	quotient = arith.ShiftRight(product, inversePrecision+shiftBack)

	// The reciprocal can overshoot by a small, bounded number of units;
	// walk it back down to where quotient*b no longer exceeds a.
	overshoot := 0
	for ; ; overshoot++ {
		if overshoot > config.NewtonCorrectionBound+4 {
			return limb.Buffer{}, limb.Buffer{}, fmt.Errorf("divide.newtonDivMod: quotient correction did not converge within bound")
		}
		qb, mulErr := m.Multiply(quotient, b)
		if mulErr != nil {
			return limb.Buffer{}, limb.Buffer{}, mulErr
		}
		if arith.LessOrEqual(qb, a) {
			remainder, err = arith.Sub("divide.newtonDivMod", a, qb)
			if err != nil {
				return limb.Buffer{}, limb.Buffer{}, err
			}
			break
		}
		quotient, err = arith.Dec("divide.newtonDivMod", quotient)
		if err != nil {
			return limb.Buffer{}, limb.Buffer{}, err
		}
	}
	mc.ObserveNewtonCorrections(overshoot)

	// Or undershoot by a small, bounded number of units; nudge it back up.
	undershoot := 0
	for ; arith.GreaterOrEqual(remainder, b); undershoot++ {
		if undershoot > config.NewtonCorrectionBound+4 {
			return limb.Buffer{}, limb.Buffer{}, fmt.Errorf("divide.newtonDivMod: remainder correction did not converge within bound")
		}
		quotient = arith.Inc(quotient)
		remainder, err = arith.Sub("divide.newtonDivMod", remainder, b)
		if err != nil {
			return limb.Buffer{}, limb.Buffer{}, err
		}
	}
	mc.ObserveNewtonCorrections(undershoot)

	return quotient, remainder, nil
}
