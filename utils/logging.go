package utils

import (
	"context"
	"log/slog"
	"os"
)

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyCredentials
)

// NewLogger builds the process-wide slog logger. format is "json" for
// structured output, anything else gets the text handler.
func NewLogger(format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})
	}

	return slog.New(handler)
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// LoggerFromContext never returns nil: callers that did not store a logger
// get the default one.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(contextKeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
