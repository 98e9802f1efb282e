// Package relay implements the chat proxy handler: method and payload
// checks, one upstream call, and a shaped response with CORS headers.
// It knows nothing about the hosting transport.
package relay

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/chatproxy/internal/config"
	"github.com/mandalnilabja/chatproxy/internal/provider"
	"github.com/mandalnilabja/chatproxy/internal/types"
)

// Request is an inbound invocation. An empty Body means no body was sent.
type Request struct {
	Method    string
	Body      []byte
	RequestID string
}

// Response is what the hosting transport writes back.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Handler turns a Request into a Response. It holds no mutable state and is
// safe for concurrent use.
type Handler struct {
	cfg      *config.Config
	upstream provider.Upstream
	logger   *slog.Logger
}

// New creates a Handler. cfg is read on every call and must not be mutated.
func New(cfg *config.Config, upstream provider.Upstream, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		cfg:      cfg,
		upstream: upstream,
		logger:   logger,
	}
}

// Handle processes one invocation. The first matching rule wins:
// preflight, method check, API key check, body parse, upstream call.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	switch req.Method {
	case http.MethodOptions:
		return h.respond(http.StatusNoContent, nil)
	case http.MethodPost:
	default:
		return h.respondError(http.StatusMethodNotAllowed, types.NewError(types.MsgMethodNotAllowed))
	}

	if !h.cfg.HasAPIKey() {
		h.logger.Error("OPENAI_API_KEY is not set", "request_id", req.RequestID)
		return h.respondError(http.StatusInternalServerError, types.NewError(types.MsgMissingAPIKey))
	}

	payload, err := types.ParseChatPayload(req.Body)
	if err != nil {
		return h.respondError(http.StatusBadRequest, types.NewError(types.MsgInvalidJSON))
	}

	result := h.upstream.Send(ctx, h.cfg.OpenAIAPIKey, payload)
	if result.Failed() {
		h.logger.Warn("upstream request failed",
			"provider", h.upstream.Name(),
			"error", result.Err,
			"duration_ms", result.Duration.Milliseconds(),
			"request_id", req.RequestID,
		)
		return h.respondError(http.StatusBadGateway,
			types.NewErrorWithDetails(types.MsgUpstreamFailed, result.Err.Error()))
	}

	h.logger.Debug("upstream responded",
		"provider", h.upstream.Name(),
		"status", result.StatusCode,
		"duration_ms", result.Duration.Milliseconds(),
		"request_id", req.RequestID,
	)
	return h.respondJSON(result.StatusCode, result.Body)
}

func (h *Handler) respond(status int, body []byte) Response {
	return Response{
		StatusCode: status,
		Headers:    h.cfg.CORSHeaders(),
		Body:       body,
	}
}

func (h *Handler) respondJSON(status int, body []byte) Response {
	resp := h.respond(status, body)
	resp.Headers["Content-Type"] = "application/json"
	return resp
}

func (h *Handler) respondError(status int, envelope *types.ErrorEnvelope) Response {
	return h.respondJSON(status, envelope.Bytes())
}
