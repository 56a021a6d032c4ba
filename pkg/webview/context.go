package webview

import (
	"context"
	"net/http"
)

// statusContextKey is the key for storing a Status in context
type statusContextKey struct{}

// SetStatusToContext stores a detection result in context
func SetStatusToContext(ctx context.Context, st Status) context.Context {
	return context.WithValue(ctx, statusContextKey{}, st)
}

// GetStatusFromContext retrieves a detection result from context. The second
// return value reports whether a result was stored; callers that need a
// Status regardless should use StatusFromRequest.
func GetStatusFromContext(ctx context.Context) (Status, bool) {
	st, ok := ctx.Value(statusContextKey{}).(Status)
	return st, ok
}

// StatusFromRequest returns the detection result for a request. A result
// stored by Middleware is reused so the heuristics run once per request;
// without the middleware the detector runs on the spot.
func StatusFromRequest(r *http.Request) Status {
	if st, ok := GetStatusFromContext(r.Context()); ok {
		return st
	}
	return FromRequest(r)
}
