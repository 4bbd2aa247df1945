package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this module's spans within whatever tracer
// provider the embedding application configures. With no provider
// configured (the common case for a library), otel.Tracer returns a
// no-op implementation and every span below costs a few struct writes.
const tracerName = "github.com/agbru/bignum"

// Tracer returns the package-scoped tracer, sourced from whatever global
// TracerProvider the host application has installed via
// otel.SetTracerProvider, or a no-op tracer if none was installed.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan starts a span named name for an algorithm-selection decision
// (e.g. "multiply.transform", "divide.newton") and returns the derived
// context and the span, which the caller must End.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name)
}
