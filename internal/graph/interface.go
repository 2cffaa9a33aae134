package graph

import "errors"

var (
	// ErrDuplicateVertex is returned by AddVertex when the identifier is
	// already registered.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrUnknownVertex is returned whenever an operation refers to an
	// identifier that was never registered.
	ErrUnknownVertex = errors.New("unknown vertex")
)

// Neighborer is the read contract the traversal engine depends on.
//
// Neighbors returns the outgoing neighbors of id, or an error wrapping
// ErrUnknownVertex when id is not part of the graph. The returned slice is
// owned by the caller.
type Neighborer[V comparable] interface {
	Neighbors(id V) ([]V, error)
}

// Lookup extends Neighborer with a membership test. It is needed by searches
// that validate their goal before exploring anything.
type Lookup[V comparable] interface {
	Neighborer[V]
	HasVertex(id V) bool
}
