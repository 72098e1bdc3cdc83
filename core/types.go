// Package core defines the immutable graph model shared by all lvlcover
// algorithms: a dense, integer-indexed, undirected graph plus the
// sentinel errors raised during its construction.
package core

import "errors"

// Sentinel errors returned by New. Any construction failure is fatal to
// that graph instance: no usable *Graph is produced.
var (
	// ErrNonPositiveOrder indicates a vertex count n <= 0.
	ErrNonPositiveOrder = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	// Self-loops are rejected outright: a vertex cannot neighbor itself.
	ErrSelfLoop = errors.New("core: self-loop edges are not allowed")

	// ErrIsolatedVertex indicates a vertex with no incident edge;
	// no edge cover can exist for such a graph.
	ErrIsolatedVertex = errors.New("core: graph contains an isolated vertex")
)

// Edge is an unordered pair of vertex indices. Equality is undirected:
// {U,V} and {V,U} denote the same edge. Edge is an immutable value type.
type Edge struct {
	U, V int
}

// Normalize returns the edge with its lower endpoint first.
// Complexity: O(1).
func (e Edge) Normalize() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Equal reports whether e and other denote the same undirected edge.
func (e Edge) Equal(other Edge) bool {
	return e.Normalize() == other.Normalize()
}
