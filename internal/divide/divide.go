package divide

import (
	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/bnerr"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/limb"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/telemetry"
)

// Divider dispatches between schoolbook and Newton-iteration division and
// owns the multiplier used internally by both the reciprocal recursion
// and the quotient correction loops. A Divider is owned by a single
// goroutine at a time.
type Divider struct {
	// Logger receives debug-level events about algorithm selection.
	Logger zerolog.Logger

	// Metrics, if set, is observed once per DivMod call.
	Metrics *metrics.Collector

	multiplier *arith.Multiplier
}

// New returns a ready-to-use Divider with logging disabled.
func New() *Divider {
	return &Divider{Logger: telemetry.NopLogger(), multiplier: arith.NewMultiplier()}
}

func (d *Divider) ensureMultiplier() *arith.Multiplier {
	if d.multiplier == nil {
		d.multiplier = arith.NewMultiplier()
	}
	d.multiplier.Logger = d.Logger
	d.multiplier.Metrics = d.Metrics
	return d.multiplier
}

// DivMod returns a/b and a%b such that quotient*b + remainder == a and
// 0 <= remainder < b. It requires b != 0, reporting
// bnerr.KindDivideByZero otherwise.
func (d *Divider) DivMod(op string, a, b limb.Buffer) (quotient, remainder limb.Buffer, err error) {
	if config.Validate && b.IsZero() {
		return limb.Buffer{}, limb.Buffer{}, bnerr.New(op, bnerr.KindDivideByZero, "divisor is zero")
	}
	if arith.Less(a, b) {
		d.Logger.Debug().Int("dividend_limbs", a.Len()).Int("divisor_limbs", b.Len()).
			Msg("divide: dividend smaller than divisor, trivial result")
		d.Metrics.ObserveDivide("trivial")
		return limb.NewZero(), a.Clone(), nil
	}

	m := d.ensureMultiplier()
	if a.Len() < config.BruteforceThreshold || b.Len() < config.BruteforceThreshold {
		d.Logger.Debug().Int("dividend_limbs", a.Len()).Int("divisor_limbs", b.Len()).
			Msg("divide: selecting schoolbook long division")
		q, r := BruteforceDivMod(a, b)
		d.Metrics.ObserveDivide("schoolbook")
		return q, r, nil
	}

	d.Logger.Debug().Int("dividend_limbs", a.Len()).Int("divisor_limbs", b.Len()).
		Msg("divide: selecting Newton-iteration reciprocal division")
	q, r, err := newtonDivMod(m, d.Metrics, a, b)
	if err != nil {
		return limb.Buffer{}, limb.Buffer{}, err
	}
	d.Metrics.ObserveDivide("newton")
	return q, r, nil
}
