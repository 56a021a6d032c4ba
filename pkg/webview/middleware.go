package webview

import "net/http"

// Middleware creates HTTP middleware that classifies the client once and
// stores the result in the request context for downstream handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := FromRequest(r)
		ctx := SetStatusToContext(r.Context(), st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
