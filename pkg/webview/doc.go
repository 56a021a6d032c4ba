// Package webview classifies HTTP clients as embedded WebViews.
//
// A WebView is a browser surface hosted inside a native mobile application,
// distinct from the platform's standalone browser. Web applications often
// render differently inside one (no address bar, no target=_blank, restricted
// downloads), so knowing whether the current client is a WebView is a common
// prerequisite for server-rendered UI decisions.
//
// Detection is a pure classification pass over the User-Agent string using
// two platform heuristics:
//
//   - Android: the user agent contains the wv marker that Android's WebView
//     appends, or it matches the legacy Version/x.y...Chrome signature that
//     predates the marker.
//   - iOS: the user agent contains AppleWebKit but not Safari. Standalone
//     iOS browsers always append Safari; embedded views built on the same
//     engine omit it.
//
// Both heuristics are computed independently and reported as-is, including
// the degenerate case where a spoofed string fires both.
//
// # Usage
//
// Classify a raw string:
//
//	st := webview.Detect(r.UserAgent())
//	if st.IsAndroid() {
//	    // hide the "open in app" banner, the user is already in the app
//	}
//
// Or mount the middleware so the heuristics run once per request and every
// handler reads the same record:
//
//	r := chi.NewRouter()
//	r.Use(webview.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    st := webview.StatusFromRequest(r)
//	    if st.InWebView() {
//	        // ...
//	    }
//	})
//
// # Error Handling
//
// There is none to do: Detect never fails. A missing, empty, or unrecognized
// user agent yields the zero Status, which classifies the client as a plain
// browser.
package webview
