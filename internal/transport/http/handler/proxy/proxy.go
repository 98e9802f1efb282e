// Package proxy adapts the chat relay to net/http.
package proxy

import (
	"github.com/mandalnilabja/chatproxy/internal/relay"
)

// maxRequestBytes caps inbound bodies read from the wire.
const maxRequestBytes = 1 << 20

// Handlers holds the dependencies for proxy HTTP handlers.
type Handlers struct {
	Relay *relay.Handler
}

// New creates a new instance of proxy handlers.
func New(r *relay.Handler) *Handlers {
	return &Handlers{
		Relay: r,
	}
}
