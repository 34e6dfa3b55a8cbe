package legacysql

import (
	"fmt"
	"strings"
)

// ResolveFormat applies a dash-delimited chain of formatter tokens to a base
// column expression, innermost token first: the first token wraps the base,
// each later token wraps the accumulated result. An empty chain returns the
// base unchanged.
//
// A bare token renders NAME(inner). A token with arguments, NAME:a1,a2,
// renders NAME(inner,a1,a2). Two tokens are special-cased: IF:cond,then,else
// renders the conditional IF(cond, then, else) in place of the accumulated
// expression, and SEC_TO_MICRO multiplies the accumulated expression by one
// million instead of wrapping it in a call.
func ResolveFormat(base, chain string) string {
	if chain == "" {
		return base
	}

	expr := base
	for _, token := range strings.Split(chain, "-") {
		if token == "SEC_TO_MICRO" {
			expr += "*1000000"
			continue
		}
		name, args, hasArgs := strings.Cut(token, ":")
		switch {
		case hasArgs && name == "IF":
			expr = "IF(" + strings.Join(strings.Split(args, ","), ", ") + ")"
		case hasArgs:
			expr = fmt.Sprintf("%s(%s,%s)", name, expr, args)
		default:
			expr = fmt.Sprintf("%s(%s)", name, expr)
		}
	}
	return expr
}
