// Package bigql renders declarative, data-shaped query descriptors into
// query text for BigQuery's legacy SQL dialect, the one with bracketed table
// names.
//
// A descriptor names a dataset, source tables (or a table date range), the
// selected fields with optional casts and aggregations, per-field condition
// groups, groupings, having-clauses, and an ordering. Rendering is a pure
// string transformation: no execution, no transport, no schema validation.
//
// # Basic Usage
//
// Descriptors can be assembled with the fluent builder:
//
//	import "github.com/eat24/bigql/providers/legacysql"
//
//	query := bigql.NewQuery("dataset", "2013_06_appspot_1").
//		Select("status", bigql.FieldRender{Alias: "status"}).
//		Where(bigql.Cond("start_time", bigql.TypeInteger, bigql.C(bigql.LE, 1371566954))).
//		OrderBy(bigql.DESC, "status").
//		Query()
//
//	sql, err := legacysql.New().Render(query)
//	// sql: SELECT status as status FROM [dataset.2013_06_appspot_1] WHERE ...
//
// They can equally be decoded from JSON or YAML with ParseJSON and ParseYAML,
// or written as plain struct literals.
//
// # Degradation
//
// Rendering is permissive: malformed condition groups and order specs degrade
// to empty clauses instead of failing, and the surrounding whitespace they
// leave behind is a stable artifact of the format. The only hard failure is a
// descriptor with no dataset or no source tables, signaled by
// ErrMissingTarget.
package bigql

import "github.com/eat24/bigql/internal/types"

// Query is the full descriptor consumed by a Renderer.
// This is re-exported from internal/types for use by consumers.
type Query = types.Query

// TableRef names the source tables for a query.
type TableRef = types.TableRef

// DateRange is a prefix-plus-date-bounds table reference.
type DateRange = types.DateRange

// SelectSpec maps source field names to their projections.
type SelectSpec = types.SelectSpec

// FieldList holds one field's projections.
type FieldList = types.FieldList

// FieldRender describes one projection of a source field.
type FieldRender = types.FieldRender

// ConditionGroup holds every comparator declared for one field.
type ConditionGroup = types.ConditionGroup

// Comparator is one comparison within a condition group.
type Comparator = types.Comparator

// Operator represents comparison operator tokens.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ       = types.EQ
	NE       = types.NE
	GE       = types.GE
	LE       = types.LE
	GT       = types.GT
	LT       = types.LT
	Contains = types.Contains
	In       = types.In
	Between  = types.Between
)

// ValueType tags the declared type of a condition group's values.
type ValueType = types.ValueType

// Re-export value type constants for public API.
const (
	TypeString    = types.TypeString
	TypeInteger   = types.TypeInteger
	TypeFloat     = types.TypeFloat
	TypeBoolean   = types.TypeBoolean
	TypeTimestamp = types.TypeTimestamp
)

// Order is the ordering specification for a query.
type Order = types.Order

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// AggRecord is the within-record aggregation level for a FieldRender.
const AggRecord = types.AggRecord
