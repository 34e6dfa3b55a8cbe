package legacysql

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/eat24/bigql/internal/types"
)

// RenderConditions renders the WHERE clause from condition groups. Groups
// missing a field, a type, or any comparators are logged and skipped.
func (p *Provider) RenderConditions(groups []types.ConditionGroup) string {
	return p.renderConditionClause("WHERE", groups)
}

// RenderHaving renders the HAVING clause with the same group semantics as
// RenderConditions.
func (p *Provider) RenderHaving(groups []types.ConditionGroup) string {
	return p.renderConditionClause("HAVING", groups)
}

func (p *Provider) renderConditionClause(keyword string, groups []types.ConditionGroup) string {
	if len(groups) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Field == "" || g.Type == "" || len(g.Comparators) == 0 {
			p.log.Warn().
				Str("clause", keyword).
				Str("field", g.Field).
				Msg("skipping malformed condition group")
			continue
		}
		rendered = append(rendered, p.renderGroup(g))
	}
	if len(rendered) == 0 {
		return ""
	}
	return keyword + " " + strings.Join(rendered, " AND ")
}

// renderGroup renders one field's comparators as a single parenthesized
// predicate. Comparators split into a positive and a negated bucket; each
// bucket is AND-joined in input order, negation applying to each negated
// term individually. When both buckets are present they are AND-joined
// inside one extra pair of parentheses.
func (p *Provider) renderGroup(g types.ConditionGroup) string {
	var positive, negated []string
	for _, c := range g.Comparators {
		term := p.renderComparator(g.Field, g.Type, c)
		if c.Negate {
			negated = append(negated, term)
		} else {
			positive = append(positive, term)
		}
	}

	pos := strings.Join(positive, " AND ")
	neg := strings.Join(negated, " AND ")
	switch {
	case pos != "" && neg != "":
		return fmt.Sprintf("((%s) AND (%s))", pos, neg)
	case pos != "":
		return "(" + pos + ")"
	default:
		return "(" + neg + ")"
	}
}

func (p *Provider) renderComparator(field string, vt types.ValueType, c types.Comparator) string {
	prefix := ""
	if c.Negate {
		prefix = "NOT "
	}

	var value string
	switch c.Condition {
	case types.In:
		wrapped := wrapValues(collect(c.Value), vt)
		sort.Strings(wrapped)
		value = "(" + strings.Join(wrapped, ", ") + ")"
	case types.Between:
		vals := collect(c.Value)
		if len(vals) != 2 {
			p.log.Warn().
				Str("field", field).
				Int("values", len(vals)).
				Msg("BETWEEN expects exactly two values")
		}
		wrapped := wrapValues(vals, vt)
		sort.Strings(wrapped)
		value = strings.Join(wrapped, " AND ")
	default:
		value = wrapValue(c.Value, vt)
	}

	return fmt.Sprintf("%s%s %s %s", prefix, field, c.Condition, value)
}

// collect normalizes a comparator value to a slice of scalars. A bare scalar
// becomes a one-element slice, so IN over a single value still renders.
func collect(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	default:
		return []any{t}
	}
}

func wrapValues(vals []any, vt types.ValueType) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = wrapValue(v, vt)
	}
	return out
}

// wrapValue renders one scalar inside its type wrapper. Known scalar types
// quote the value; BOOLEAN coerces it to 1 or 0 via truthiness instead of
// passing a literal through; unrecognized type tags wrap the raw value
// unquoted.
func wrapValue(v any, vt types.ValueType) string {
	switch vt {
	case types.TypeBoolean:
		if truthy(v) {
			return "BOOLEAN(1)"
		}
		return "BOOLEAN(0)"
	case types.TypeString, types.TypeInteger, types.TypeFloat, types.TypeTimestamp:
		return fmt.Sprintf("%s('%s')", vt, formatScalar(v))
	default:
		return fmt.Sprintf("%s(%s)", vt, formatScalar(v))
	}
}

// formatScalar renders a scalar value as text. Floats that carry no
// fractional part print without an exponent so JSON-decoded integers come out
// as integers.
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// truthy mirrors value truthiness for BOOLEAN coercion: nil, false, zero
// numbers, empty strings, and empty collections are false, everything else
// is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
