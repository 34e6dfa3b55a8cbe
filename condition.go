package bigql

import "github.com/eat24/bigql/internal/types"

// C creates a comparator.
func C(op types.Operator, value any) types.Comparator {
	return types.Comparator{Condition: op, Value: value}
}

// NotC creates a negated comparator.
func NotC(op types.Operator, value any) types.Comparator {
	return types.Comparator{Condition: op, Negate: true, Value: value}
}

// InList creates an IN comparator over one or more values.
func InList(values ...any) types.Comparator {
	return types.Comparator{Condition: types.In, Value: values}
}

// BetweenRange creates a BETWEEN comparator over an inclusive pair of bounds.
func BetweenRange(low, high any) types.Comparator {
	return types.Comparator{Condition: types.Between, Value: []any{low, high}}
}

// Cond groups the comparators declared for one field under a declared value
// type. A group needs at least one comparator to render.
func Cond(field string, vt types.ValueType, comparators ...types.Comparator) types.ConditionGroup {
	return types.ConditionGroup{
		Field:       field,
		Type:        vt,
		Comparators: comparators,
	}
}
