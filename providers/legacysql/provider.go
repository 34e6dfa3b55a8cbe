// Package legacysql renders query descriptors to BigQuery legacy SQL, the
// dialect with bracketed table names.
//
// Rendering is deliberately permissive: condition groups or order specs with
// a malformed shape are logged and skipped, leaving their clause slot empty
// while the rest of the query renders normally. Empty clause slots leave runs
// of whitespace between the rendered clauses; that spacing is a stable
// artifact of the format, not something to clean up.
package legacysql

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eat24/bigql"
	"github.com/eat24/bigql/internal/types"
)

// Provider renders descriptors to legacy SQL text. Rendering only reads its
// input and allocates a fresh result string, so one Provider is safe for
// concurrent use.
type Provider struct {
	log zerolog.Logger
}

var _ bigql.Renderer = (*Provider)(nil)

// New creates a provider that discards diagnostics.
func New() *Provider {
	return &Provider{log: zerolog.Nop()}
}

// NewWithLogger creates a provider that reports skipped malformed clause
// sections to the given logger.
func NewWithLogger(log zerolog.Logger) *Provider {
	return &Provider{log: log}
}

// Render produces the full query string for a descriptor. It returns
// bigql.ErrMissingTarget when the descriptor names no dataset or no source
// tables; every other malformed shape degrades to an empty clause.
func (p *Provider) Render(q *types.Query) (string, error) {
	if q == nil || q.Dataset == "" || q.Tables.IsEmpty() {
		return "", bigql.ErrMissingTarget
	}

	clauses := []string{
		p.RenderSelect(q.Select),
		p.RenderSources(q.Dataset, q.Tables),
		p.RenderConditions(q.Conditions),
		p.RenderGroupings(q.Groupings),
		p.RenderHaving(q.Having),
		p.RenderOrder(q.OrderBy),
	}
	return strings.Join(clauses, " "), nil
}

// RenderSelect renders the SELECT clause. An empty spec selects everything.
// Field iteration order is unspecified; each FieldRender contributes exactly
// one select entry.
func (p *Provider) RenderSelect(sel types.SelectSpec) string {
	if len(sel) == 0 {
		return "SELECT *"
	}

	entries := make([]string, 0, len(sel))
	for field, renders := range sel {
		if len(renders) == 0 {
			renders = types.FieldList{{}}
		}
		for _, r := range renders {
			entries = append(entries, renderSelectEntry(field, r))
		}
	}
	return "SELECT " + strings.Join(entries, ", ")
}

// renderSelectEntry renders one projection. A plain entry without an alias
// keeps a trailing space from the join with the empty alias slot; downstream
// segment splitting depends on that spacing staying put. Formatted and
// aggregated entries render without it.
func renderSelectEntry(field string, r types.FieldRender) string {
	expr := field
	plain := r.Format == "" && r.AggregationLevel == ""
	if r.Format != "" {
		expr = ResolveFormat(expr, r.Format)
	}
	if r.AggregationLevel != "" {
		expr = fmt.Sprintf("%s WITHIN %s", expr, strings.ToUpper(r.AggregationLevel))
	}

	if r.Alias != "" {
		return fmt.Sprintf("%s as %s", expr, r.Alias)
	}
	if plain {
		return expr + " "
	}
	return expr
}

// RenderSources renders the FROM clause: bracketed dataset.suffix names for a
// table list, or a TABLE_DATE_RANGE call for a date-range reference.
func (p *Provider) RenderSources(dataset string, ref types.TableRef) string {
	if ref.Range != nil {
		r := ref.Range
		if r.Table == "" || r.From == "" || r.To == "" {
			p.log.Warn().
				Str("table", r.Table).
				Str("from", r.From).
				Str("to", r.To).
				Msg("skipping malformed date-range source")
			return "FROM "
		}
		return fmt.Sprintf("FROM (TABLE_DATE_RANGE([%s.%s], TIMESTAMP('%s'), TIMESTAMP('%s'))) ",
			dataset, r.Table, r.From, r.To)
	}

	names := make([]string, len(ref.Names))
	for i, name := range ref.Names {
		names[i] = fmt.Sprintf("[%s.%s]", dataset, name)
	}
	return "FROM " + strings.Join(names, ", ")
}

// RenderGroupings renders the GROUP BY clause, preserving caller order.
func (p *Provider) RenderGroupings(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	return "GROUP BY " + strings.Join(fields, ", ")
}

// RenderOrder renders the ORDER BY clause. A missing spec, or one lacking
// either its field list or its direction, renders nothing.
func (p *Provider) RenderOrder(o *types.Order) string {
	if o == nil {
		return ""
	}
	if len(o.Fields) == 0 || o.Direction == "" {
		p.log.Warn().
			Strs("fields", o.Fields).
			Str("direction", string(o.Direction)).
			Msg("skipping malformed order spec")
		return ""
	}
	return fmt.Sprintf("ORDER BY %s %s", strings.Join(o.Fields, " "), o.Direction)
}
