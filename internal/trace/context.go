package trace

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id as the correlation ID
// that Begin/End attach to their log lines. An empty id is a valid,
// present value distinct from "no request ID set".
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID carried by ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
