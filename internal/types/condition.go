package types

// Operator is a comparison token. The set is open: tokens outside the known
// constants render verbatim, so engine keywords the model does not name still
// work.
type Operator string

const (
	EQ       Operator = "=="
	NE       Operator = "!="
	GE       Operator = ">="
	LE       Operator = "<="
	GT       Operator = ">"
	LT       Operator = "<"
	Contains Operator = "CONTAINS"
	In       Operator = "IN"
	Between  Operator = "BETWEEN"
)

// ValueType tags the declared type of a condition group's values. Like
// Operator, the set is open; unrecognized tags wrap their value unquoted.
type ValueType string

const (
	TypeString    ValueType = "STRING"
	TypeInteger   ValueType = "INTEGER"
	TypeFloat     ValueType = "FLOAT"
	TypeBoolean   ValueType = "BOOLEAN"
	TypeTimestamp ValueType = "TIMESTAMP"
)

// Comparator is one comparison applied to a group's field. Value holds a
// scalar, or a collection of scalars for IN and BETWEEN.
type Comparator struct {
	Condition Operator `json:"condition" yaml:"condition"`
	Negate    bool     `json:"negate,omitempty" yaml:"negate,omitempty"`
	Value     any      `json:"value" yaml:"value"`
}

// ConditionGroup collects every comparator declared for one field. A group
// renders as a single parenthesized predicate unit; a group with no
// comparators is malformed and is skipped by renderers.
type ConditionGroup struct {
	Field       string       `json:"field" yaml:"field"`
	Type        ValueType    `json:"type" yaml:"type"`
	Comparators []Comparator `json:"comparators" yaml:"comparators"`
}
