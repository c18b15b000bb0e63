// Package requestctx carries per-request metadata: the scoped logger, trace
// identifiers, and the resolved content locale.
package requestctx

import (
	"context"
	"sync"

	"go.uber.org/zap"

	domain "github.com/business-start/api/internal/domain"
)

type contextKey string

const (
	loggerContextKey contextKey = "github.com/business-start/api/internal/platform/requestctx/logger"
	traceContextKey  contextKey = "github.com/business-start/api/internal/platform/requestctx/trace"
	localeContextKey contextKey = "github.com/business-start/api/internal/platform/requestctx/locale"
)

var noopLogger = zap.NewNop()

// TraceInfo captures trace metadata propagated through request context.
type TraceInfo struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// WithLogger stores the logger in context for downstream consumers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Logger retrieves the zap logger from context or returns a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return noopLogger
}

// NoopLogger exposes the shared noop logger instance used across the package.
func NoopLogger() *zap.Logger { return noopLogger }

// WithTrace stores the trace metadata on the context for downstream usage.
func WithTrace(ctx context.Context, info TraceInfo) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceContextKey, info)
}

// Trace retrieves the trace metadata from context when available.
func Trace(ctx context.Context) (TraceInfo, bool) {
	if ctx == nil {
		return TraceInfo{}, false
	}
	info, ok := ctx.Value(traceContextKey).(TraceInfo)
	if !ok {
		return TraceInfo{}, false
	}
	return info, true
}

// TraceID extracts the trace identifier from context when present.
func TraceID(ctx context.Context) string {
	info, ok := Trace(ctx)
	if !ok {
		return ""
	}
	return info.TraceID
}

// localeSlot is shared between the request-logging middleware and the handler
// that eventually resolves the locale, so writes are visible to context
// ancestors that captured the slot before the handler ran.
type localeSlot struct {
	mu     sync.Mutex
	locale domain.Locale
}

// WithLocale allocates a locale slot on the context. Handlers fill it with
// SetLocale once the request locale is known.
func WithLocale(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey, &localeSlot{})
}

// SetLocale records the resolved content locale. A no-op when no slot is
// present, so handlers can call it unconditionally.
func SetLocale(ctx context.Context, locale domain.Locale) {
	if ctx == nil {
		return
	}
	if slot, ok := ctx.Value(localeContextKey).(*localeSlot); ok {
		slot.mu.Lock()
		slot.locale = locale
		slot.mu.Unlock()
	}
}

// Locale retrieves the content locale from context, defaulting when unset.
func Locale(ctx context.Context) domain.Locale {
	if ctx == nil {
		return domain.DefaultLocale
	}
	if slot, ok := ctx.Value(localeContextKey).(*localeSlot); ok {
		slot.mu.Lock()
		defer slot.mu.Unlock()
		if slot.locale != "" {
			return slot.locale
		}
	}
	return domain.DefaultLocale
}
