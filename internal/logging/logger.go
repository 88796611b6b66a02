// Package logging defines the structured-logging contract the server
// components depend on, keeping them decoupled from the concrete backend.
// The only implementation today wraps log/slog.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// alternating key/value pairs:
//
//	log.Info(ctx, "starting HTTP server", "address", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	// Services use it to tag every line with their module name.
	With(args ...any) Logger
}
