package log

import (
	"context"
	"log/slog"
)

type ctxKey uint8

const (
	ctxKeyUsername ctxKey = iota
	ctxKeyDemoMode
)

// WithUsername returns a context that makes every log record carry the
// signed-in username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ctxKeyUsername, username)
}

// WithDemoMode marks the context so log records show the call was served
// from the demo fixture rather than the network.
func WithDemoMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyDemoMode, true)
}

var _ slog.Handler = (*enrichedHandler)(nil)

// enrichedHandler enriches logs with session data carried on the context
type enrichedHandler struct {
	h slog.Handler
}

func newEnrichedHandler(h slog.Handler) enrichedHandler {
	return enrichedHandler{h: h}
}

func (eh enrichedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return eh.h.Enabled(ctx, level)
}

func (eh enrichedHandler) Handle(ctx context.Context, r slog.Record) error {
	if username, ok := ctx.Value(ctxKeyUsername).(string); ok && username != "" {
		r.Add("username", slog.StringValue(username))
	}

	if demo, ok := ctx.Value(ctxKeyDemoMode).(bool); ok && demo {
		r.Add("demo_mode", slog.BoolValue(true))
	}

	return eh.h.Handle(ctx, r)
}

func (eh enrichedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newEnrichedHandler(eh.h.WithAttrs(attrs))
}

func (eh enrichedHandler) WithGroup(name string) slog.Handler {
	return newEnrichedHandler(eh.h.WithGroup(name))
}
