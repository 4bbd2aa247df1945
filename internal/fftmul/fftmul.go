package fftmul

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/bnerr"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/telemetry"
	"github.com/agbru/bignum/internal/transform"
)

// Multiplier owns a transform.Engine and the complex scratch buffers used
// to pack operands into it. Per the package's thread model, a Multiplier
// is owned by a single goroutine at a time; independent goroutines must
// use independent Multipliers to multiply concurrently.
type Multiplier struct {
	// Logger receives debug-level events about transform sizing.
	Logger zerolog.Logger

	// Metrics, if set, is observed once per Multiply call with backend
	// "transform". Nil is safe (a no-op).
	Metrics *metrics.Collector

	engine     *transform.Engine
	bufA, bufB []complex128
}

// New returns a ready-to-use Multiplier with logging disabled.
func New() *Multiplier {
	e := transform.New()
	return &Multiplier{
		Logger: telemetry.NopLogger(),
		engine: e,
	}
}

func (m *Multiplier) scratch(buf *[]complex128, n int) []complex128 {
	if cap(*buf) < n {
		*buf = make([]complex128, n)
	} else {
		*buf = (*buf)[:n]
		for i := range *buf {
			(*buf)[i] = 0
		}
	}
	return *buf
}

// Multiply returns the product of a and b computed via the transform
// engine. Both operand lengths must not exceed config.TransformLimit.
func (m *Multiplier) Multiply(a, b limb.Buffer) (limb.Buffer, error) {
	_, span := telemetry.StartSpan(context.Background(), "multiply.transform")
	defer span.End()

	if m.engine == nil {
		m.engine = transform.New()
	}
	la, lb := a.Len(), b.Len()
	if config.Validate {
		if la > config.TransformLimit {
			return limb.Buffer{}, bnerr.New("fftmul.Multiply", bnerr.KindTransformLimit,
				"left operand length %d exceeds transform limit %d", la, config.TransformLimit)
		}
		if lb > config.TransformLimit {
			return limb.Buffer{}, bnerr.New("fftmul.Multiply", bnerr.KindTransformLimit,
				"right operand length %d exceeds transform limit %d", lb, config.TransformLimit)
		}
	}

	resultLength := uint32(la + lb)
	n := transform.TransformLengthFor(resultLength)
	m.engine.Logger = m.Logger
	m.engine.EnsureSize(n)

	bufA := m.scratch(&m.bufA, int(n))
	bufB := m.scratch(&m.bufB, int(n))
	for i := 0; i < la; i++ {
		v := a.Limb(i)
		bufA[i] = complex(float64(v%10000), float64(v/10000))
	}
	for i := 0; i < lb; i++ {
		v := b.Limb(i)
		bufB[i] = complex(float64(v%10000), float64(v/10000))
	}

	m.engine.Forward(bufA, n)
	m.engine.Forward(bufB, n)
	m.engine.PointwiseMultiply(bufA, bufB, n)
	m.engine.Inverse(bufA, n)

	result := limb.New(int(resultLength))
	var carry uint64
	for i := uint32(0); i < resultLength; i++ {
		re := int64(real(bufA[i]) + 0.5)
		im := int64(imag(bufA[i]) + 0.5)
		carry += uint64(re + im*10000)
		result.SetLimb(int(i), uint32(carry%config.Base))
		carry /= config.Base
	}
	for carry > 0 {
		result.Append(uint32(carry % config.Base))
		carry /= config.Base
	}
	result.Canonicalize()

	m.Metrics.ObserveMultiply("transform")
	return result, nil
}
