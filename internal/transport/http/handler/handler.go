package handler

import (
	"time"

	"github.com/mandalnilabja/chatproxy/internal/relay"
	"github.com/mandalnilabja/chatproxy/internal/transport/http/handler/infra"
	"github.com/mandalnilabja/chatproxy/internal/transport/http/handler/proxy"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Proxy *proxy.Handlers
	Infra *infra.Handlers
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(r *relay.Handler) *Repo {
	return &Repo{
		Proxy: proxy.New(r),
		Infra: infra.New(time.Now()),
	}
}
