package mobileagent_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mobileagent "github.com/ensunluer/use-mobile-agent"
	"github.com/ensunluer/use-mobile-agent/pkg/webview"
)

const (
	androidWebViewUA = "Mozilla/5.0 (Linux; Android 12; SM-G991B Build/SP1A.210812.016; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/96.0.4664.104 Mobile Safari/537.36"
	iosWebViewUA     = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"
	desktopChromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

func TestStatusHandlerJSON(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected mobileagent.StatusResponse
	}{
		{
			name:     "android webview",
			ua:       androidWebViewUA,
			expected: mobileagent.StatusResponse{Android: true},
		},
		{
			name:     "ios webview",
			ua:       iosWebViewUA,
			expected: mobileagent.StatusResponse{IOS: true},
		},
		{
			name:     "desktop browser",
			ua:       desktopChromeUA,
			expected: mobileagent.StatusResponse{},
		},
		{
			name:     "missing user agent",
			ua:       "",
			expected: mobileagent.StatusResponse{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/webview", nil)
			if tc.ua != "" {
				req.Header.Set("User-Agent", tc.ua)
			}
			w := httptest.NewRecorder()

			mobileagent.StatusHandler().ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var resp mobileagent.StatusResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.expected, resp)
		})
	}
}

func TestStatusHandlerReusesMiddlewareResult(t *testing.T) {
	t.Parallel()

	// A status stored by the middleware wins over re-detection, so the
	// handler reports the memoized record.
	req := httptest.NewRequest(http.MethodGet, "/webview", nil)
	req.Header.Set("User-Agent", desktopChromeUA)
	req = req.WithContext(webview.SetStatusToContext(req.Context(), webview.Status{IOS: true}))

	w := httptest.NewRecorder()
	mobileagent.StatusHandler().ServeHTTP(w, req)

	var resp mobileagent.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IOS)
}

func TestStatusHandlerDataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/webview", nil)
	req.Header.Set("User-Agent", androidWebViewUA)
	req.Header.Set("Accept", "text/event-stream")
	w := httptest.NewRecorder()

	mobileagent.StatusHandler().ServeHTTP(w, req)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	body := w.Body.String()
	assert.Contains(t, body, `"android":true`)
	assert.Contains(t, body, `"ios":false`)
	assert.Contains(t, body, `"combined":false`)
}
