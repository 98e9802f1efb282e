package infra

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestHealthCheck(t *testing.T) {
	h := New(time.Now().Add(-90 * time.Second))

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "active" || body["app"] != "chatproxy" {
		t.Errorf("body = %v", body)
	}
	if up, _ := body["uptime_seconds"].(float64); up < 90 {
		t.Errorf("uptime_seconds = %v, want >= 90", body["uptime_seconds"])
	}
}
