package logging

import "context"

type requestIDKey struct{}

// RequestIDKey is the attribute name under which loggers emit the request
// id carried by a context.
const RequestIDKey = "request_id"

// ContextWithRequestID returns a copy of ctx whose log lines carry id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID appends the request id of ctx to args when there is one.
func withRequestID(ctx context.Context, args []any) []any {
	if id := RequestIDFrom(ctx); id != "" {
		return append(args[:len(args):len(args)], RequestIDKey, id)
	}
	return args
}
