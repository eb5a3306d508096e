package roles

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// marshal encodes v without escaping HTML characters, so that values such as
// "Health & Safety Awareness" are written as-is.
func marshal(v any) ([]byte, error) {
	b := &bytes.Buffer{}

	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// stringValue decodes a raw JSON string. Missing and non-string values are
// returned as an empty string.
func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string

	err := json.Unmarshal(raw, &s)
	if err != nil {
		return ""
	}

	return s
}

// EqualJSON reports whether two raw JSON values are equal ignoring
// insignificant whitespace.
func EqualJSON(a, b json.RawMessage) bool {
	var ca, cb bytes.Buffer

	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return bytes.Equal(a, b)
	}

	return bytes.Equal(ca.Bytes(), cb.Bytes())
}

// isKind reports whether the first significant byte of raw is c.
func isKind(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == c
}
