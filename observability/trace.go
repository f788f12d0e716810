package observability

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used when TraceObserver falls back
// to the global tracer provider.
const TracerName = "github.com/tailored-agentic-units/observable"

// Span attribute keys set on every span emitted by TraceObserver.
const (
	AttrSource = "observable.source"
	AttrLevel  = "observable.level"
)

// TraceObserver records each event as a zero-duration span named after the
// event type. The span is a child of any span carried by the context.
type TraceObserver struct {
	tracer trace.Tracer
}

// NewTraceObserver creates a TraceObserver. A nil tracer resolves
// otel.Tracer(TracerName) on every event so that a provider installed after
// construction is honoured.
func NewTraceObserver(tracer trace.Tracer) *TraceObserver {
	return &TraceObserver{tracer: tracer}
}

func (o *TraceObserver) OnEvent(ctx context.Context, event Event) {
	tracer := o.tracer
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	attrs := make([]attribute.KeyValue, 0, len(event.Data)+2)
	attrs = append(attrs,
		attribute.String(AttrSource, event.Source),
		attribute.String(AttrLevel, event.Level.String()),
	)
	for _, k := range slices.Sorted(maps.Keys(event.Data)) {
		attrs = append(attrs, toAttribute(k, event.Data[k]))
	}

	_, span := tracer.Start(ctx, string(event.Type),
		trace.WithTimestamp(event.Timestamp),
		trace.WithAttributes(attrs...),
	)
	span.End(trace.WithTimestamp(event.Timestamp))
}

func toAttribute(key string, v any) attribute.KeyValue {
	switch val := v.(type) {
	case string:
		return attribute.String(key, val)
	case bool:
		return attribute.Bool(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case uint64:
		return attribute.Int64(key, int64(val))
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprint(val))
	}
}
