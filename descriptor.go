package bigql

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/eat24/bigql/internal/types"
)

// ParseJSON decodes a query descriptor from JSON. Select entries may be a
// single render mapping or a list of them, and the tables value may be a
// list of names or a date_range mapping.
func ParseJSON(data []byte) (*types.Query, error) {
	var q types.Query
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("bigql: decode descriptor: %w", err)
	}
	return &q, nil
}

// ParseYAML decodes a query descriptor from YAML, accepting the same shapes
// as ParseJSON.
func ParseYAML(data []byte) (*types.Query, error) {
	var q types.Query
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("bigql: decode descriptor: %w", err)
	}
	return &q, nil
}
