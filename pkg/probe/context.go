package probe

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores a report in the context.
func WithContext(ctx context.Context, r Report) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext retrieves a report stored by WithContext.
func FromContext(ctx context.Context) (Report, bool) {
	if ctx == nil {
		return Report{}, false
	}
	r, ok := ctx.Value(contextKey{}).(Report)
	return r, ok
}

// LoggerExtractor returns a context extractor that adds the stored report to
// every log record under the "probe" key.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if r, ok := FromContext(ctx); ok {
			return slog.Any("probe", r), true
		}
		return slog.Attr{}, false
	}
}
