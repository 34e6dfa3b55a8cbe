package types

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Aggregation levels recognized in a FieldRender.
const (
	AggRecord = "RECORD"
)

// FieldRender describes one projection of a source field: an optional output
// alias, an optional aggregation level, and an optional format chain (see the
// legacysql provider for the chain syntax).
type FieldRender struct {
	Alias            string `json:"alias,omitempty" yaml:"alias,omitempty"`
	AggregationLevel string `json:"aggregation_level,omitempty" yaml:"aggregation_level,omitempty"`
	Format           string `json:"format,omitempty" yaml:"format,omitempty"`
}

// FieldList holds the projections of a single field. The wire form may be a
// single mapping or a list of mappings; the latter projects one underlying
// field several times under different aliases or casts.
type FieldList []FieldRender

// SelectSpec maps source field names to their projections. Iteration order is
// not significant to output correctness, but every FieldRender is rendered
// exactly once.
type SelectSpec map[string]FieldList

// UnmarshalJSON accepts a single render mapping or a list of them.
func (l *FieldList) UnmarshalJSON(data []byte) error {
	var many []FieldRender
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one FieldRender
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = FieldList{one}
	return nil
}

// UnmarshalYAML accepts the same two shapes as UnmarshalJSON.
func (l *FieldList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var many []FieldRender
		if err := value.Decode(&many); err != nil {
			return err
		}
		*l = many
		return nil
	}

	var one FieldRender
	if err := value.Decode(&one); err != nil {
		return err
	}
	*l = FieldList{one}
	return nil
}
