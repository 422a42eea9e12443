package core

import "context"

// Context keys for workflow options
type contextKey string

const quietKey contextKey = "quiet"

// WithQuiet marks the context so workflows do not print warnings.
// The MCP server uses it because stdio carries the protocol.
func WithQuiet(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietKey, true)
}

// isQuiet returns whether warnings should be suppressed from context
func isQuiet(ctx context.Context) bool {
	val := ctx.Value(quietKey)
	if val == nil {
		return false // default: print warnings
	}
	quiet, ok := val.(bool)
	return ok && quiet
}
