package types

import (
	"errors"

	"github.com/goccy/go-json"
)

// ErrInvalidJSON is returned when an inbound body cannot be parsed as JSON.
var ErrInvalidJSON = errors.New("invalid JSON body")

// Error messages returned to callers.
const (
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgMissingAPIKey    = "Server missing OPENAI_API_KEY"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgUpstreamFailed   = "Upstream request failed"
)

// ErrorEnvelope is the JSON body of every locally produced error response.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewError creates an error envelope without details.
func NewError(message string) *ErrorEnvelope {
	return &ErrorEnvelope{Error: message}
}

// NewErrorWithDetails creates an error envelope carrying a failure description.
func NewErrorWithDetails(message, details string) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error:   message,
		Details: details,
	}
}

// Bytes encodes the envelope as compact JSON.
func (e *ErrorEnvelope) Bytes() []byte {
	data, _ := json.Marshal(e)
	return data
}
