// Package matching defines the result type, options, and sentinel errors
// for maximum-cardinality matching over a core.Graph.
package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcover/core"
)

// Unmatched marks a vertex with no partner in a Matching.
const Unmatched = -1

// MethodAugmenting selects the greedy-seed + BFS augmenting-path engine.
const MethodAugmenting = "augmenting"

// MethodKuhn selects the per-vertex alternating-DFS engine (Kuhn).
const MethodKuhn = "kuhn"

// Sentinel errors for matching computation.
var (
	// ErrNilGraph is returned when a nil *core.Graph is supplied.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrUnknownMethod is returned by Compute for an unrecognized Method.
	ErrUnknownMethod = errors.New("matching: unknown method")
)

// Matching is a symmetric partial pairing of vertices.
//
// Invariants (maintained by both engines):
//   - Mate[v] == Unmatched, or Mate[Mate[v]] == v (symmetry).
//   - No vertex appears in more than one pair.
type Matching struct {
	// Mate[v] is the partner of vertex v, or Unmatched.
	Mate []int
}

// Size returns the number of matched pairs.
// Complexity: O(V).
func (m Matching) Size() int {
	var count int
	for v, u := range m.Mate {
		if u != Unmatched && v < u {
			count++
		}
	}

	return count
}

// Covers reports whether vertex v is an endpoint of some matched pair.
func (m Matching) Covers(v int) bool {
	return v >= 0 && v < len(m.Mate) && m.Mate[v] != Unmatched
}

// Edges returns the matched pairs as normalized edges (lower endpoint
// first), in ascending order of the lower endpoint.
// Complexity: O(V).
func (m Matching) Edges() []core.Edge {
	pairs := make([]core.Edge, 0, len(m.Mate)/2)
	for v, u := range m.Mate {
		if u != Unmatched && v < u {
			pairs = append(pairs, core.Edge{U: v, V: u})
		}
	}

	return pairs
}

// Options configures which matching engine Compute runs.
//
// Fields:
//
//	Method string — one of MethodAugmenting or MethodKuhn.
//
// Use DefaultOptions() for the default setup (augmenting-path BFS).
type Options struct {
	// Method to use: MethodAugmenting or MethodKuhn.
	Method string
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that selects the engine by name.
// Allowed values: MethodAugmenting, MethodKuhn.
func WithMethod(method string) Option {
	return func(o *Options) {
		o.Method = method
	}
}

// DefaultOptions returns Options initialized for the augmenting-path
// engine, which needs no recursion and bounds its stack regardless of
// graph shape.
func DefaultOptions() Options {
	return Options{Method: MethodAugmenting}
}

// Compute selects and runs the matching engine based on opts.Method.
//
//	– If opts.Method == MethodAugmenting: calls Augmenting(graph).
//	– If opts.Method == MethodKuhn:       calls Kuhn(graph).
//	– Otherwise:                          returns ErrUnknownMethod.
//
// Both engines fulfill the same contract: a valid matching that is
// maximum on bipartite graphs (maximal otherwise; see the package
// documentation), deterministic for a fixed input.
func Compute(graph *core.Graph, opts Options) (Matching, error) {
	switch opts.Method {
	case MethodAugmenting:
		return Augmenting(graph)
	case MethodKuhn:
		return Kuhn(graph)
	default:
		return Matching{}, fmt.Errorf("Compute: method %q: %w", opts.Method, ErrUnknownMethod)
	}
}
