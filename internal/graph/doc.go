// Package graph provides the vertex and edge store that every traversal in
// graphwalk reads from.
//
// # Model
//
// A Graph maps each vertex identifier to the set of vertices it points at.
// Edges are directed and have set semantics: adding the same edge twice is a
// no-op, and the order in which neighbors are reported is unspecified.
//
//	┌───────┐   AddEdge(1, 2)   ┌───────┐
//	│   1   │ ────────────────▶ │   2   │
//	└───────┘                   └───────┘
//
// # Mutation Surface
//
// The store is only ever grown: AddVertex registers an identifier and AddEdge
// links two registered identifiers. Nothing is removed during the lifetime of
// a Graph.
//
//   - AddVertex rejects identifiers that are already registered with
//     ErrDuplicateVertex.
//   - AddEdge checks the destination first and then the source; either one
//     missing yields ErrUnknownVertex and the store is left untouched.
//
// # Reading
//
// Neighbors returns a fresh slice on every call, so callers can hold on to it
// while the graph keeps changing. Traversals only depend on the Neighborer
// interface and never reach into the maps directly.
//
// # Thread-Safety
//
// Individual calls are guarded by a read/write mutex. A traversal is made of
// many Neighbors calls, so callers that mutate a graph while another goroutine
// walks it must serialize the two themselves.
package graph
