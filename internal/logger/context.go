package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// WithRequestID stashes the request id so layers below the transport can
// tag their log lines with it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromCtx returns the global logger with request_id attached when present.
func FromCtx(ctx context.Context) *zap.Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return L().With(zap.String("request_id", id))
	}
	return L()
}
