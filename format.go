package bigql

import (
	"fmt"
	"strings"
)

// Formatter builds one formatter token for a FieldRender format chain: NAME
// for a bare function, NAME:arg1,arg2 when literal arguments are given.
func Formatter(name string, args ...any) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return name + ":" + strings.Join(parts, ",")
}

// Chain joins formatter tokens into a format chain, innermost first: the
// first token wraps the base column, each later token wraps the result of
// the one before it.
func Chain(tokens ...string) string {
	return strings.Join(tokens, "-")
}
