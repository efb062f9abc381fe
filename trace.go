//go:build !notrace

package vel

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
)

type traceLoggerKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

var tracingEnabled atomic.Bool

func init() {
	tracingEnabled.Store(true)
}

// TracingEnabled reports whether trace events are emitted.
func TracingEnabled() bool {
	return tracingEnabled.Load()
}

// SetTracingEnabled turns trace events on or off at runtime.
func SetTracingEnabled(enabled bool) {
	tracingEnabled.Store(enabled)
}

// WithTraceLogger attaches a logger that receives trace events from
// Materialize and ToForeign. A logger already present is kept.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// TraceEvent logs a debug level event to the context's trace logger.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	if !tracingEnabled.Load() {
		return
	}
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs an error to the context's trace logger.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	if !tracingEnabled.Load() {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}
		return tlog
	}
	return nullLogger
}
