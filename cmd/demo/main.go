package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	mobileagent "github.com/ensunluer/use-mobile-agent"
	"github.com/ensunluer/use-mobile-agent/pkg/config"
	"github.com/ensunluer/use-mobile-agent/pkg/httpserver"
	"github.com/ensunluer/use-mobile-agent/pkg/logger"
	"github.com/ensunluer/use-mobile-agent/pkg/webview"
)

type appConfig struct {
	HTTP httpserver.Config
	Log  logger.Config
}

// indexHTML drives the signals endpoint from a DataStar frontend: the page
// requests the detection result once on load and renders the flags reactively.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>WebView detection demo</title>
  <script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body data-signals="{ios: false, android: false, combined: false}" data-on-load="@get('/webview/signals')">
  <h1>WebView detection</h1>
  <ul>
    <li>iOS WebView: <span data-text="$ios"></span></li>
    <li>Android WebView: <span data-text="$android"></span></li>
    <li>Both (spoofed?): <span data-text="$combined"></span></li>
  </ul>
</body>
</html>
`

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(webview.Middleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})
	r.Method(http.MethodGet, "/webview", mobileagent.StatusHandler())
	r.Get("/webview/signals", func(w http.ResponseWriter, r *http.Request) {
		if err := mobileagent.PublishStatus(w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to publish webview signals", slog.Any("error", err))
		}
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server terminated", slog.Any("error", err))
		os.Exit(1)
	}
}
