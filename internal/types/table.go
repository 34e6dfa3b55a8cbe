package types

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TableRef names the sources for a query: either an ordered list of table
// name suffixes, each joined with the dataset as dataset.suffix, or a date
// range over a shared table prefix.
// This is exported from the internal package so providers can use it,
// but external users cannot import this package.
type TableRef struct {
	Names []string
	Range *DateRange
}

// DateRange is a table reference expressed as a prefix plus inclusive date
// bounds instead of explicit table names.
type DateRange struct {
	Table string `json:"table" yaml:"table"`
	From  string `json:"from_date" yaml:"from_date"`
	To    string `json:"to_date" yaml:"to_date"`
}

// IsEmpty reports whether the reference names no source at all.
func (t TableRef) IsEmpty() bool {
	return len(t.Names) == 0 && t.Range == nil
}

// rawDateRange mirrors the wire shape of a date-range table reference.
type rawDateRange struct {
	DateRange bool   `json:"date_range" yaml:"date_range"`
	Table     string `json:"table" yaml:"table"`
	From      string `json:"from_date" yaml:"from_date"`
	To        string `json:"to_date" yaml:"to_date"`
}

// UnmarshalJSON accepts either a list of table names or a date-range mapping
// flagged with date_range: true.
func (t *TableRef) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		t.Names = names
		t.Range = nil
		return nil
	}

	var raw rawDateRange
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("table reference: %w", err)
	}
	if !raw.DateRange {
		return fmt.Errorf("table reference: mapping form requires date_range: true")
	}
	t.Names = nil
	t.Range = &DateRange{Table: raw.Table, From: raw.From, To: raw.To}
	return nil
}

// UnmarshalYAML accepts the same two shapes as UnmarshalJSON.
func (t *TableRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		t.Names = names
		t.Range = nil
		return nil
	}

	var raw rawDateRange
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("table reference: %w", err)
	}
	if !raw.DateRange {
		return fmt.Errorf("table reference: mapping form requires date_range: true")
	}
	t.Names = nil
	t.Range = &DateRange{Table: raw.Table, From: raw.From, To: raw.To}
	return nil
}
