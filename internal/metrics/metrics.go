package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the counters and histograms the engine increments as it
// selects algorithms and runs operations. The zero value is not ready for
// use; construct one with NewCollector.
type Collector struct {
	multiplyTotal    *prometheus.CounterVec
	divideTotal      *prometheus.CounterVec
	newtonCorrection prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics against reg.
// If reg is nil, the metrics are created but never registered, which is
// useful in tests that want the counting behavior without a live
// Prometheus registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		multiplyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bignum",
			Name:      "multiply_total",
			Help:      "Total number of limb-buffer multiplications, labeled by the algorithm selected.",
		}, []string{"backend"}),
		divideTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bignum",
			Name:      "divide_total",
			Help:      "Total number of divisions, labeled by the algorithm selected.",
		}, []string{"backend"}),
		newtonCorrection: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bignum",
			Name:      "newton_quotient_corrections",
			Help:      "Number of unit-correction steps the Newton division quotient refinement needed.",
			Buckets:   []float64{0, 1, 2},
		}),
	}
	if reg != nil {
		reg.MustRegister(c.multiplyTotal, c.divideTotal, c.newtonCorrection)
	}
	return c
}

// ObserveMultiply records that a multiplication completed using backend
// ("schoolbook" or "transform").
func (c *Collector) ObserveMultiply(backend string) {
	if c == nil {
		return
	}
	c.multiplyTotal.WithLabelValues(backend).Inc()
}

// ObserveDivide records that a division completed using backend
// ("trivial", "schoolbook" or "newton").
func (c *Collector) ObserveDivide(backend string) {
	if c == nil {
		return
	}
	c.divideTotal.WithLabelValues(backend).Inc()
}

// ObserveNewtonCorrections records how many unit-correction steps a
// Newton-division quotient refinement needed.
func (c *Collector) ObserveNewtonCorrections(n int) {
	if c == nil {
		return
	}
	c.newtonCorrection.Observe(float64(n))
}
