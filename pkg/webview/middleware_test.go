package webview_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensunluer/use-mobile-agent/pkg/webview"
)

const (
	androidWebViewUA = "Mozilla/5.0 (Linux; Android 10) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/66.0.3359.126 Mobile Safari/537.36 wv"
	iosWebViewUA     = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"
	iosSafariUA      = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
)

func TestContext(t *testing.T) {
	t.Run("set_and_get", func(t *testing.T) {
		t.Parallel()

		st := webview.Status{IOS: true}
		ctx := webview.SetStatusToContext(context.Background(), st)

		got, ok := webview.GetStatusFromContext(ctx)
		require.True(t, ok, "status should be present after set")
		assert.Equal(t, st, got)
	})

	t.Run("missing_value", func(t *testing.T) {
		t.Parallel()

		got, ok := webview.GetStatusFromContext(context.Background())
		assert.False(t, ok)
		assert.Equal(t, webview.Status{}, got)
	})

	t.Run("zero_status_is_still_a_hit", func(t *testing.T) {
		t.Parallel()

		ctx := webview.SetStatusToContext(context.Background(), webview.Status{})
		_, ok := webview.GetStatusFromContext(ctx)
		assert.True(t, ok, "a stored zero status must be distinguishable from a miss")
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("stores_status_for_downstream_handlers", func(t *testing.T) {
		t.Parallel()

		var got webview.Status
		var ok bool
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = webview.GetStatusFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", androidWebViewUA)
		w := httptest.NewRecorder()

		webview.Middleware(handler).ServeHTTP(w, req)

		require.True(t, ok, "middleware should store a status")
		assert.True(t, got.Android)
		assert.False(t, got.IOS)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("same_record_across_consumers", func(t *testing.T) {
		t.Parallel()

		var seen []webview.Status
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, webview.StatusFromRequest(r))
			seen = append(seen, webview.StatusFromRequest(r))
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", iosWebViewUA)
		w := httptest.NewRecorder()

		webview.Middleware(inner).ServeHTTP(w, req)

		require.Len(t, seen, 2)
		assert.Equal(t, seen[0], seen[1], "every consumer reads the same record")
		assert.True(t, seen[0].IOS)
	})

	t.Run("plain_browser_yields_zero_status", func(t *testing.T) {
		t.Parallel()

		var got webview.Status
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = webview.StatusFromRequest(r)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", iosSafariUA)
		w := httptest.NewRecorder()

		webview.Middleware(handler).ServeHTTP(w, req)

		assert.Equal(t, webview.Status{}, got)
	})
}

func TestStatusFromRequest(t *testing.T) {
	t.Run("detects_without_middleware", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", iosWebViewUA)

		st := webview.StatusFromRequest(req)
		assert.True(t, st.IOS)
	})

	t.Run("prefers_context_value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", iosWebViewUA)

		stored := webview.Status{Android: true}
		req = req.WithContext(webview.SetStatusToContext(req.Context(), stored))

		assert.Equal(t, stored, webview.StatusFromRequest(req))
	})
}

func TestUserAgentSource(t *testing.T) {
	t.Run("prefers_user_agent_header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", iosSafariUA)
		req.Header.Set("X-Requested-With", "com.example.app")

		assert.Equal(t, iosSafariUA, webview.UserAgent(req))
	})

	t.Run("falls_back_to_requested_with", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Requested-With", "com.example.app")

		assert.Equal(t, "com.example.app", webview.UserAgent(req))
	})

	t.Run("absent_source_fails_open", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Equal(t, "", webview.UserAgent(req))
		assert.Equal(t, webview.Status{}, webview.FromRequest(req))
	})
}
