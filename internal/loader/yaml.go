package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// normalizeDocument converts YAML documents to their JSON form so the
// blockdef decoder sees one wire format. JSON documents pass through
// untouched; JSON is a YAML subset, so detection keys off the first byte.
func normalizeDocument(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("blockdef loader: empty document")
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return trimmed, nil
	}

	var decoded any
	if err := yaml.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("blockdef loader: decode yaml: %w", err)
	}
	normalized, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("blockdef loader: normalise yaml: %w", err)
	}
	return normalized, nil
}
