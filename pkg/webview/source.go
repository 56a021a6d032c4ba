package webview

import "net/http"

// headerRequestedWith carries the embedding application's package name on
// Android WebView requests. It serves as a secondary identity source when the
// User-Agent header is missing.
const headerRequestedWith = "X-Requested-With"

// UserAgent resolves the client identity string for a request. The User-Agent
// header is preferred; when it is absent the X-Requested-With header is used
// as a fallback. An empty string is returned when neither is present so the
// caller fails open to "not a WebView".
func UserAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return r.Header.Get(headerRequestedWith)
}

// FromRequest runs the detector against the request's resolved user agent.
func FromRequest(r *http.Request) Status {
	return Detect(UserAgent(r))
}
