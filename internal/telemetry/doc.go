// Package telemetry wires the logging and tracing collaborators shared by
// the engine's internal packages (arith, fftmul, divide) and the
// bignumcalc command: an injectable zerolog.Logger, defaulting to a
// no-op, and an OpenTelemetry tracer taken from the global provider (a
// no-op when none is installed) used to mark spans around the transform
// multiply and the Newton divide without requiring a configured exporter.
package telemetry
