package mobileagent

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/ensunluer/use-mobile-agent/pkg/webview"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// Signal names published to the frontend.
const (
	SignalIOS      = "ios"
	SignalAndroid  = "android"
	SignalCombined = "combined"
)

// IsDataStar checks if the request comes from a DataStar frontend.
// DataStar requests accept Server-Sent Events and may carry signals in the
// query parameter or request body.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// Signals builds the signal map published for a detection result. The
// combined signal is derived at publication time, mirroring its definition
// as a pure function of the two flags.
func Signals(st webview.Status) map[string]any {
	return map[string]any{
		SignalIOS:      st.IOS,
		SignalAndroid:  st.Android,
		SignalCombined: st.Combined(),
	}
}

// PublishStatus resolves the client's WebView status and patches it into the
// frontend's signals over SSE. The status is resolved once on connection and
// never changes for the lifetime of the page, so this is a one-shot
// publication rather than an open stream.
func PublishStatus(w http.ResponseWriter, r *http.Request) error {
	st := webview.StatusFromRequest(r)

	data, err := json.Marshal(Signals(st))
	if err != nil {
		return err
	}

	sse := datastar.NewSSE(w, r)
	return sse.PatchSignals(data)
}
