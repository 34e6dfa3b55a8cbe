package types

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "asc"
	DESC Direction = "desc"
)

// Order is the ordering specification for a query. A spec missing either its
// field list or its direction is malformed and renders as an empty clause.
type Order struct {
	Fields    []string  `json:"fields" yaml:"fields"`
	Direction Direction `json:"direction" yaml:"direction"`
}
