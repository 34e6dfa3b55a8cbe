package types

// Query is the full descriptor for one rendered query. It is constructed by
// the caller, read once by a renderer, and never mutated.
type Query struct {
	Dataset    string           `json:"dataset" yaml:"dataset"`
	Tables     TableRef         `json:"tables" yaml:"tables"`
	Select     SelectSpec       `json:"select,omitempty" yaml:"select,omitempty"`
	Conditions []ConditionGroup `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Groupings  []string         `json:"groupings,omitempty" yaml:"groupings,omitempty"`
	Having     []ConditionGroup `json:"having,omitempty" yaml:"having,omitempty"`
	OrderBy    *Order           `json:"order_by,omitempty" yaml:"order_by,omitempty"`
}
