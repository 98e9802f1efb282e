package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CompactJSON validates data as JSON (RFC 8259, same gate as
// ParseChatPayload) and returns it without insignificant whitespace.
// Key order and value text are preserved.
func CompactJSON(data []byte) ([]byte, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON (%d bytes)", len(data))
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
