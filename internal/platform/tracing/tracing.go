// Package tracing is a small tracing abstraction so the intake service can
// emit spans without importing OpenTelemetry APIs throughout the codebase.
package tracing

import "context"

// Span represents an active trace span.
type Span interface {
	// End completes the span, marking it failed when err is non-nil. Call
	// exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span names used by the intake service.
const (
	SpanValidateStep = "intake.validate_step"
	SpanSummary      = "intake.summary"
	SpanRecap        = "intake.recap"
	SpanSubmit       = "intake.submit"
)

// Attribute keys used by the intake service.
const (
	AttrStep      = "intake.step"
	AttrValid     = "intake.valid"
	AttrRefusals  = "intake.refusals"
	AttrReference = "intake.reference"
	AttrMaxRooms  = "intake.max_rooms"
)
