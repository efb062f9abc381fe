//go:build notrace

package vel

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

func TracingEnabled() bool {
	return false
}

func SetTracingEnabled(enabled bool) {}

// WithTraceLogger returns ctx unchanged.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {}

func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {}
