package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

type idKey string

const (
	requestIDKey     idKey = "request_id"
	correlationIDKey idKey = "correlation_id"
)

var defaultLogger = slog.Default()

// FromContext extracts the logger from context.
// Returns the default logger if no logger is found or ctx is nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID records the request ID sent to the repository and adds it to
// the logger in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	logger := FromContext(ctx).With(slog.String("request_id", requestID))

	return WithContext(ctx, logger)
}

// WithTraceID adds the active span's trace ID to the logger in context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	logger := FromContext(ctx).With(slog.String("trace_id", traceID))

	return WithContext(ctx, logger)
}

// WithCorrelationID records a caller-supplied correlation ID and adds it to
// the logger in context.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey, correlationID)
	logger := FromContext(ctx).With(slog.String("correlation_id", correlationID))

	return WithContext(ctx, logger)
}

// RequestIDFromContext returns the request ID, or "" if none was set.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none was set.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey)
}

func stringValue(ctx context.Context, key idKey) string {
	if ctx == nil {
		return ""
	}

	if v, ok := ctx.Value(key).(string); ok {
		return v
	}

	return ""
}

// SetDefault sets the default logger used when no logger is in context.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
