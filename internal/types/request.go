package types

import (
	"bytes"
	"encoding/json"
)

// Default values applied to fields missing from an inbound chat request.
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
)

// Field names forwarded upstream. Anything else in the inbound body is dropped.
const (
	FieldModel       = "model"
	FieldMessages    = "messages"
	FieldMaxTokens   = "max_tokens"
	FieldTemperature = "temperature"
)

var (
	defaultModelJSON       = json.RawMessage(`"gpt-4o-mini"`)
	defaultMessagesJSON    = json.RawMessage(`[]`)
	defaultMaxTokensJSON   = json.RawMessage(`500`)
	defaultTemperatureJSON = json.RawMessage(`0.7`)
)

// The inbound body and the outbound payload go through encoding/json:
// goccy's Valid accepts truncated literals such as "nul" and rejects
// numbers that overflow float64, and both must be decided by RFC 8259.

// ChatPayload is the outbound chat completion body.
// Fields are kept as raw JSON so that values of an unexpected type are
// forwarded exactly as the client sent them. Field order is the wire order.
type ChatPayload struct {
	Model       json.RawMessage `json:"model"`
	Messages    json.RawMessage `json:"messages"`
	MaxTokens   json.RawMessage `json:"max_tokens"`
	Temperature json.RawMessage `json:"temperature"`
}

// DefaultChatPayload returns a payload with every field at its default.
func DefaultChatPayload() ChatPayload {
	return ChatPayload{
		Model:       clone(defaultModelJSON),
		Messages:    clone(defaultMessagesJSON),
		MaxTokens:   clone(defaultMaxTokensJSON),
		Temperature: clone(defaultTemperatureJSON),
	}
}

// ParseChatPayload parses a raw inbound body and applies defaults.
//
// An empty body is treated as {}. A body that is not valid JSON returns
// ErrInvalidJSON. Valid JSON that is not an object (a string, number, array
// or null) carries no fields, so every field takes its default.
//
// Defaults replace only missing keys:
//   - model:       "gpt-4o-mini"
//   - messages:    []
//   - max_tokens:  500
//   - temperature: 0.7
//
// A key that is present keeps its raw value, including null.
func ParseChatPayload(body []byte) (ChatPayload, error) {
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return ChatPayload{}, ErrInvalidJSON
	}

	payload := DefaultChatPayload()

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return ChatPayload{}, ErrInvalidJSON
	}

	override(&payload.Model, fields, FieldModel)
	override(&payload.Messages, fields, FieldMessages)
	override(&payload.MaxTokens, fields, FieldMaxTokens)
	override(&payload.Temperature, fields, FieldTemperature)

	return payload, nil
}

// Marshal serializes the payload as a compact JSON object. String values
// are written without HTML escaping.
func (p ChatPayload) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// override replaces dst with the client's value when the key is present.
func override(dst *json.RawMessage, fields map[string]json.RawMessage, key string) {
	v, ok := fields[key]
	if !ok {
		return
	}
	if len(v) == 0 {
		v = json.RawMessage("null")
	}
	*dst = v
}

func clone(raw json.RawMessage) json.RawMessage {
	return append(json.RawMessage(nil), raw...)
}
