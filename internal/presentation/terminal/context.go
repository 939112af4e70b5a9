package terminal

import (
	"context"

	"github.com/Zhima-Mochi/brewterm/internal/observability"
	"github.com/Zhima-Mochi/brewterm/internal/observability/logctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// WithCommandContext injects a command-scoped logger for one menu command.
// Fields: command_id (generated when attrs has none), command, trace_id/span_id
// when the context carries a valid span, plus any low-cardinality attrs.
func WithCommandContext(
	ctx context.Context,
	base observability.Logger,
	command string,
	attrs map[string]string,
) context.Context {
	fields := make([]observability.Field, 0, 4+len(attrs))

	cmdID := attrs["command_id"]
	if cmdID == "" {
		cmdID = uuid.NewString()
	}
	fields = append(fields,
		observability.F("command_id", cmdID),
		observability.F("command", command),
	)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			observability.F("trace_id", sc.TraceID().String()),
			observability.F("span_id", sc.SpanID().String()),
		)
	}

	for k, v := range attrs {
		if k == "command_id" || v == "" {
			continue
		}
		fields = append(fields, observability.F(k, v))
	}

	ctx, _ = logctx.Enrich(ctx, base, fields...)
	return ctx
}
