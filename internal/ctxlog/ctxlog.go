// Package ctxlog carries a slog.Logger through context.Context so every
// layer logs through the logger the app configured, without plumbing it as
// an explicit parameter.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type so no other package can collide with our
// context key.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to the
// process default when none was embedded.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
