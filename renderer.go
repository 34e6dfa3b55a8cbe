package bigql

import (
	"errors"

	"github.com/eat24/bigql/internal/types"
)

// Renderer defines the interface for dialect-specific query rendering.
// Implementations convert a descriptor to a single query string.
type Renderer interface {
	// Render converts a descriptor to query text. It returns
	// ErrMissingTarget when the descriptor names no dataset or no source
	// tables.
	Render(q *types.Query) (string, error)
}

// ErrMissingTarget is returned when a descriptor has no dataset or no source
// tables; without a target there is nothing to render.
var ErrMissingTarget = errors.New("bigql: query descriptor has no dataset or tables")
