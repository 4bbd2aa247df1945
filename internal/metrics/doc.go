// Package metrics exposes Prometheus instrumentation for operation counts
// and algorithm selection across the engine: how often multiplication
// picked schoolbook versus the transform path, how often division picked
// schoolbook versus Newton iteration, and how many correction steps the
// Newton quotient refinement needed. Metrics register lazily against a
// caller-supplied prometheus.Registerer, so a library consumer that never
// wires one pays no registration cost and gets no global state.
package metrics
