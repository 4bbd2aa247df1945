// Package calibration probes, for the hardware it runs on, the limb
// lengths at which the transform-based multiplier and the Newton-division
// path actually overtake their schoolbook counterparts. The engine itself
// never calls into this package: BruteforceThreshold and TransformLimit
// are fixed constants chosen for correctness and worst-case safety
// (config.BruteforceThreshold, config.TransformLimit). This package is a
// non-functional tuning aid a caller can run offline to sanity-check that
// those fixed thresholds are still in the right neighborhood on a given
// machine, the way the teacher's adaptive.go informed (but never
// overrode) its own static defaults.
package calibration

import (
	"context"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// TimedOp measures the wall-clock cost of performing some operation at the
// given operand length (in limbs), however the caller defines "length".
type TimedOp func(length int) time.Duration

// Sample is one measured (length, duration) pair for one algorithm.
type Sample struct {
	Length   int
	Baseline time.Duration
	Other    time.Duration
}

// Prober concurrently measures a baseline and an alternative algorithm
// across a set of candidate lengths and reports where the alternative
// starts winning. A single Prober deduplicates concurrent probes of the
// same length via singleflight, so multiple callers racing to calibrate
// at startup only pay for one measurement per length.
type Prober struct {
	Logger zerolog.Logger

	group singleflight.Group
}

// NewProber returns a Prober with logging disabled by default.
func NewProber() *Prober {
	return &Prober{Logger: zerolog.Nop()}
}

// GenerateCandidateLengths returns a set of limb lengths to probe around
// hint (0.25x to 8x of it); on machines with 8 or more CPUs the sweep also
// extends to 16x and 32x, since the measurements parallelize better.
func GenerateCandidateLengths(hint int) []int {
	if hint <= 0 {
		hint = 64
	}
	factors := []float64{0.25, 0.5, 1, 2, 4, 8}
	if runtime.NumCPU() >= 8 {
		factors = append(factors, 16, 32)
	}
	lengths := make([]int, 0, len(factors))
	seen := make(map[int]bool)
	for _, f := range factors {
		n := int(float64(hint) * f)
		if n < 1 {
			n = 1
		}
		if !seen[n] {
			seen[n] = true
			lengths = append(lengths, n)
		}
	}
	sort.Ints(lengths)
	return lengths
}

// sampleAt measures baseline and other once at length, deduplicating
// concurrent callers for the same length through singleflight.
func (p *Prober) sampleAt(ctx context.Context, length int, baseline, other TimedOp) (Sample, error) {
	key := strconv.Itoa(length)
	v, err, _ := p.group.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Sample{
			Length:   length,
			Baseline: baseline(length),
			Other:    other(length),
		}, nil
	})
	if err != nil {
		return Sample{}, err
	}
	return v.(Sample), nil
}

// FindCrossover measures baseline and other at every length in lengths,
// concurrently, and returns the samples in ascending length order along
// with the smallest length at which other was faster than baseline. It
// returns ok=false if other never won within the probed range.
func (p *Prober) FindCrossover(ctx context.Context, lengths []int, baseline, other TimedOp) ([]Sample, int, bool) {
	samples := make([]Sample, len(lengths))
	first := make(map[int]int, len(lengths))

	g, gctx := errgroup.WithContext(ctx)
	for i, length := range lengths {
		if _, dup := first[length]; dup {
			continue
		}
		first[length] = i
		i, length := i, length
		g.Go(func() error {
			s, err := p.sampleAt(gctx, length, baseline, other)
			if err != nil {
				return err
			}
			samples[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.Logger.Debug().Err(err).Msg("calibration probe aborted")
		return nil, 0, false
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Length < samples[j].Length })
	for _, s := range samples {
		if s.Other < s.Baseline {
			p.Logger.Debug().Int("length", s.Length).
				Dur("baseline", s.Baseline).Dur("other", s.Other).
				Msg("crossover found")
			return samples, s.Length, true
		}
	}
	return samples, 0, false
}
