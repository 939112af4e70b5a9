package oteltrace

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns an SDK tracer provider and the sink its spans are written to.
type Provider struct {
	tp   *sdktrace.TracerProvider
	sink io.Closer
}

// NewWriterProvider exports finished spans as JSON to w. Spans are exported
// synchronously when they end.
func NewWriterProvider(w io.Writer, service string) (*Provider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("oteltrace: exporter: %w", err)
	}
	res := resource.NewSchemaless(attribute.String("service.name", service))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
	)
	return &Provider{tp: tp}, nil
}

// NewFileProvider appends spans to the file at path and installs the provider
// globally.
func NewFileProvider(path, service string) (*Provider, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("oteltrace: prepare trace file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("oteltrace: open trace file: %w", err)
	}
	p, err := NewWriterProvider(f, service)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	p.sink = f
	otel.SetTracerProvider(p.tp)
	return p, nil
}

func (p *Provider) TracerProvider() *sdktrace.TracerProvider { return p.tp }

// Shutdown flushes pending spans and closes the sink.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	err := p.tp.Shutdown(ctx)
	if p.sink != nil {
		if cerr := p.sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
