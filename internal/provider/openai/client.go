// Package openai implements the OpenAI chat completions upstream.
package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mandalnilabja/chatproxy/internal/provider"
	"github.com/mandalnilabja/chatproxy/internal/types"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 16 << 20

// Client implements provider.Upstream for the OpenAI API.
// The API key is passed per call, not stored on the client.
type Client struct {
	httpClient *http.Client
	url        string
}

// New creates a client posting to url. timeout bounds the whole exchange,
// body read included; zero means no client-side limit beyond the context.
func New(url string, timeout time.Duration) *Client {
	return NewWithHTTPClient(url, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a client using the given http.Client.
func NewWithHTTPClient(url string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
	}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "openai"
}

// URL returns the chat completions endpoint
func (c *Client) URL() string {
	return c.url
}

// Send posts payload to the chat completions endpoint.
// Any upstream status is a successful exchange; only transport failures and
// bodies that are not JSON produce a failed Result.
func (c *Client) Send(ctx context.Context, apiKey string, payload types.ChatPayload) *provider.Result {
	started := time.Now()

	body, err := payload.Marshal()
	if err != nil {
		return provider.Failure(fmt.Errorf("failed to marshal request: %w", err), started)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return provider.Failure(fmt.Errorf("failed to create request: %w", err), started)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return provider.Failure(fmt.Errorf("%w: %w", provider.ErrUpstreamUnreachable, err), started)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return provider.Failure(fmt.Errorf("%w: failed to read response: %w", provider.ErrUpstreamUnreachable, err), started)
	}

	compact, err := types.CompactJSON(raw)
	if err != nil {
		return provider.Failure(fmt.Errorf("%w: status %d: %w", provider.ErrUpstreamUnreachable, resp.StatusCode, err), started)
	}

	return &provider.Result{
		StatusCode: resp.StatusCode,
		Body:       compact,
		Duration:   time.Since(started),
	}
}
