package proxy

import (
	"io"
	"net/http"

	"github.com/mandalnilabja/chatproxy/internal/relay"
	"github.com/mandalnilabja/chatproxy/internal/transport/http/middleware"
)

// unreadableBody stands in for a body that could not be read. It is not
// JSON, so the relay answers 400 once its earlier checks have passed.
var unreadableBody = []byte{0}

// ChatCompletions serves any method on any path through the relay.
// The request context is passed on, so a client disconnect abandons the
// upstream call.
func (h *Handlers) ChatCompletions(w http.ResponseWriter, r *http.Request) {
	req := relay.Request{
		Method:    r.Method,
		RequestID: middleware.GetRequestID(r.Context()),
	}

	// The body only matters for POST.
	if r.Method == http.MethodPost && r.Body != nil {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			body = unreadableBody
		}
		req.Body = body
	}

	WriteResponse(w, h.Relay.Handle(r.Context(), req))
}

// WriteResponse copies a relay response onto w.
func WriteResponse(w http.ResponseWriter, resp relay.Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
