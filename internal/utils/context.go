// Package utils provides general-purpose helper utilities used across the
// application: type-safe context keys, trace identifiers and the clock that
// stamps record timestamps.
package utils

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-blog-records/internal/logger"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the operation trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext returns the trace id stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// WithTraceID makes sure ctx carries a trace id and a logger tagged with it.
//
// If ctx already has a trace id it is returned unchanged, so nested service
// calls share one id. Otherwise a new UUIDv7 is generated, stored in ctx, and
// a child of base enriched with a "trace_id" field is attached to ctx for
// logger.FromContext.
func WithTraceID(ctx context.Context, base *logger.Logger) context.Context {
	if _, ok := GetTraceIDFromContext(ctx); ok {
		return ctx
	}

	traceID := NewUUIDGenerator().Generate()

	l := base.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	ctx = context.WithValue(ctx, TraceIDCtxKey, traceID)
	return l.WithContext(ctx)
}
