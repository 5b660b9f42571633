// Package logging carries the zerolog logger through context.Context.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type logKey struct{}

var discardLogger = zerolog.Nop()

// Log returns the logger attached to ctx. Events are discarded if no logger was attached.
func Log(ctx context.Context) *zerolog.Logger {
	logger, ok := ctx.Value(logKey{}).(*zerolog.Logger)
	if !ok || logger == nil {
		return &discardLogger
	}

	return logger
}

// WithLogger attaches the given logger to the context
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}
