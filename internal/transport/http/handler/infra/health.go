package infra

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// HealthCheck handler returns the application health status.
// It does not check the upstream or the API key.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":         "active",
		"app":            "chatproxy",
		"uptime_seconds": int64(time.Since(h.StartTime).Seconds()),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
