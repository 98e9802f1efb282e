package app

import (
	"net/http"

	"github.com/mandalnilabja/chatproxy/internal/transport/http/handler"
	"github.com/mandalnilabja/chatproxy/internal/transport/http/middleware"
)

// NewRouter creates and configures the HTTP router with all application routes.
// Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", repo.Infra.HealthCheck)
	// A GET pattern also matches HEAD; keep HEAD on the relay like every other method.
	mux.HandleFunc("HEAD /api/health", repo.Proxy.ChatCompletions)

	// Everything else, any method and any path, goes through the relay.
	// It answers preflight and 405 itself, with CORS headers on every path.
	mux.HandleFunc("/", repo.Proxy.ChatCompletions)

	return middleware.RequestID(mux)
}
