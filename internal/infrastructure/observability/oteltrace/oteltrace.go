package oteltrace

import (
	"context"

	"github.com/Zhima-Mochi/brewterm/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracer struct{ t trace.Tracer }

// New wraps the named tracer from the global provider. Until a provider is
// installed (see NewFileProvider) spans are non-recording.
func New(name string) observability.Tracer {
	if name == "" {
		name = "brewterm"
	}
	return &tracer{t: otel.Tracer(name)}
}

// FromProvider wraps a tracer taken from an explicit provider.
func FromProvider(tp trace.TracerProvider, name string) observability.Tracer {
	if tp == nil {
		return New(name)
	}
	if name == "" {
		name = "brewterm"
	}
	return &tracer{t: tp.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
