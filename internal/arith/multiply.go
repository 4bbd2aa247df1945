package arith

import (
	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/fftmul"
	"github.com/agbru/bignum/internal/limb"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/telemetry"
)

// Schoolbook returns the product of a and b computed by direct
// convolution. Grounded on the bruteforce branch of
// UnsignedInteger::operator*=.
func Schoolbook(a, b limb.Buffer) limb.Buffer {
	la, lb := a.Len(), b.Len()
	result := limb.New(la + lb - 1)
	var carry uint64
	for i := 0; i < result.Len(); i++ {
		lo := 0
		if i >= la {
			lo = i - la + 1
		}
		hi := i
		if hi > lb-1 {
			hi = lb - 1
		}
		for j := lo; j <= hi; j++ {
			carry += uint64(a.Limb(i-j)) * uint64(b.Limb(j))
		}
		result.SetLimb(i, uint32(carry%config.Base))
		carry /= config.Base
	}
	for carry > 0 {
		result.Append(uint32(carry % config.Base))
		carry /= config.Base
	}
	result.Canonicalize()
	return result
}

// Multiplier dispatches between Schoolbook and transform-based
// multiplication, mirroring the length check UnsignedInteger::operator*=
// performs before choosing its FFT branch. A Multiplier is owned by a
// single goroutine at a time; share an FFT-capable Multiplier across
// goroutines only by giving each its own instance.
type Multiplier struct {
	Logger  zerolog.Logger
	Metrics *metrics.Collector

	fft *fftmul.Multiplier
}

// NewMultiplier returns a ready-to-use Multiplier with logging disabled.
func NewMultiplier() *Multiplier {
	return &Multiplier{Logger: telemetry.NopLogger()}
}

// Multiply returns the product of a and b, using Schoolbook when either
// operand is shorter than config.BruteforceThreshold limbs and the
// transform engine otherwise.
func (m *Multiplier) Multiply(a, b limb.Buffer) (limb.Buffer, error) {
	if a.Len() < config.BruteforceThreshold || b.Len() < config.BruteforceThreshold {
		m.Metrics.ObserveMultiply("schoolbook")
		return Schoolbook(a, b), nil
	}
	if m.fft == nil {
		m.fft = fftmul.New()
	}
	m.fft.Logger = m.Logger
	m.fft.Metrics = m.Metrics
	return m.fft.Multiply(a, b)
}
