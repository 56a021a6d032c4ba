// Package mobileagent publishes WebView detection results to reactive web
// UIs.
//
// The heavy lifting lives in pkg/webview: a pure classifier that decides,
// from the User-Agent string, whether the client is an embedded iOS or
// Android WebView. This package is the glue between that classifier and a
// rendering layer:
//
//   - StatusHandler serves the detection result as JSON, or as DataStar
//     signals over SSE when the request comes from a DataStar frontend.
//   - PublishStatus pushes the ios/android/combined signals once on
//     connection, after which dependent UI reacts to the (never-changing)
//     flags without any further round trips.
//
// Mount webview.Middleware in front of your router so the classification
// runs exactly once per request; every consumer, this package included,
// then reads the same memoized record from the request context.
//
//	r := chi.NewRouter()
//	r.Use(webview.Middleware)
//	r.Method(http.MethodGet, "/webview", mobileagent.StatusHandler())
package mobileagent
