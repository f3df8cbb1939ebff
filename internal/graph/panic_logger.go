package graph

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// panicLogger reports resolver panics through slog.
type panicLogger struct {
	logger *slog.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.ErrorContext(ctx, "graphql: panic occurred",
		"panic", fmt.Sprint(value),
		"stack", string(debug.Stack()),
	)
}
