package mobileagent

import (
	"encoding/json"
	"net/http"

	"github.com/ensunluer/use-mobile-agent/pkg/webview"
)

// StatusResponse is the JSON rendition of a detection result.
type StatusResponse struct {
	IOS      bool `json:"ios"`
	Android  bool `json:"android"`
	Combined bool `json:"combined"`
}

// NewStatusResponse builds the response payload for a detection result.
func NewStatusResponse(st webview.Status) StatusResponse {
	return StatusResponse{
		IOS:      st.IOS,
		Android:  st.Android,
		Combined: st.Combined(),
	}
}

// StatusHandler returns a handler that reports the client's WebView status.
// DataStar frontends receive the result as patched signals over SSE; every
// other client gets a plain JSON body.
func StatusHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsDataStar(r) {
			if err := PublishStatus(w, r); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		st := webview.StatusFromRequest(r)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(NewStatusResponse(st))
	})
}
