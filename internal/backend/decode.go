package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeList coerces the backend's inconsistent empty-collection
// representations into a guaranteed slice: null (or an empty body) becomes
// an empty slice, a bare object becomes a one-element slice, an array
// decodes as-is.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	switch trimmed[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	case '{':
		var single T
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, err
		}
		return []T{single}, nil
	default:
		return nil, fmt.Errorf("expected a JSON array, object or null, got %q", previewBytes(trimmed, 40))
	}
}

func previewBytes(data []byte, max int) string {
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}
