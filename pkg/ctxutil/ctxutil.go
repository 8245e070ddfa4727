package ctxutil

import (
	"context"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// Caller identifies whoever triggered a request: the token subject and its role.
type Caller struct {
	Subject string
	Role    string
}

// WithCaller stores the authenticated caller in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx extracts the caller from the context.
// Returns false if the value is missing, has no role, or has the wrong type.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok || c.Role == "" {
		return Caller{}, false
	}
	return c, true
}

// RoleFromCtx returns the caller role or an empty string.
func RoleFromCtx(ctx context.Context) string {
	c, _ := CallerFromCtx(ctx)
	return c.Role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
