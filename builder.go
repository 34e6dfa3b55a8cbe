package bigql

import "github.com/eat24/bigql/internal/types"

// Builder provides a fluent API for assembling query descriptors. It is
// plain sugar over the descriptor structs; nothing is validated until the
// descriptor is rendered.
type Builder struct {
	q types.Query
}

// NewQuery starts a descriptor for the given dataset and table name suffixes.
func NewQuery(dataset string, tables ...string) *Builder {
	return &Builder{
		q: types.Query{
			Dataset: dataset,
			Tables:  types.TableRef{Names: tables},
		},
	}
}

// DateRange replaces the table list with a date-range source over a table
// prefix and inclusive from/to date literals.
func (b *Builder) DateRange(table, from, to string) *Builder {
	b.q.Tables = types.TableRef{
		Range: &types.DateRange{Table: table, From: from, To: to},
	}
	return b
}

// Select adds projections of a source field. With no renders given the field
// is projected plain, without alias or cast. Calling Select repeatedly for
// the same field appends further projections.
func (b *Builder) Select(field string, renders ...types.FieldRender) *Builder {
	if b.q.Select == nil {
		b.q.Select = types.SelectSpec{}
	}
	if len(renders) == 0 {
		renders = []types.FieldRender{{}}
	}
	b.q.Select[field] = append(b.q.Select[field], renders...)
	return b
}

// Where appends condition groups to the WHERE clause.
func (b *Builder) Where(groups ...types.ConditionGroup) *Builder {
	b.q.Conditions = append(b.q.Conditions, groups...)
	return b
}

// GroupBy appends grouping fields; their order is preserved in the output.
func (b *Builder) GroupBy(fields ...string) *Builder {
	b.q.Groupings = append(b.q.Groupings, fields...)
	return b
}

// Having appends condition groups to the HAVING clause.
func (b *Builder) Having(groups ...types.ConditionGroup) *Builder {
	b.q.Having = append(b.q.Having, groups...)
	return b
}

// OrderBy sets the ordering specification.
func (b *Builder) OrderBy(direction types.Direction, fields ...string) *Builder {
	b.q.OrderBy = &types.Order{Fields: fields, Direction: direction}
	return b
}

// Query returns a copy of the assembled descriptor.
func (b *Builder) Query() *types.Query {
	q := b.q
	return &q
}
