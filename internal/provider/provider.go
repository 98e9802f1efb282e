// Package provider defines the outbound call to the upstream chat service.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/mandalnilabja/chatproxy/internal/types"
)

// ErrUpstreamUnreachable wraps every failure that prevents an upstream
// response from being obtained: dial errors, timeouts, unreadable or
// non-JSON bodies.
var ErrUpstreamUnreachable = errors.New("upstream unreachable")

// Upstream sends one chat completion request to the upstream service.
type Upstream interface {
	// Name returns the provider identifier
	Name() string

	// Send performs exactly one outbound exchange. It never returns nil.
	Send(ctx context.Context, apiKey string, payload types.ChatPayload) *Result
}

// Result is the outcome of one upstream exchange: either a response
// (StatusCode and Body set, Err nil) or a failure (Err set).
type Result struct {
	// StatusCode is the upstream's own status, whatever it is
	StatusCode int

	// Body is the upstream JSON body, compacted
	Body []byte

	Duration time.Duration

	// Err is non-nil when no usable response was obtained
	Err error
}

// Failed reports whether the exchange failed before a response was obtained.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Failure builds a failed Result.
func Failure(err error, started time.Time) *Result {
	return &Result{
		Err:      err,
		Duration: time.Since(started),
	}
}
