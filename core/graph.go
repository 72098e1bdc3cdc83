package core

import "fmt"

// Graph is a dense, integer-indexed, undirected graph. Vertices are the
// indices [0, n); identity is the index itself. A Graph is validated and
// frozen by New: no method mutates the edge list or the adjacency
// structure after construction.
type Graph struct {
	n     int     // vertex count
	edges []Edge  // input edges, original order preserved
	adj   [][]int // adjacency list, built once by New
}

// New constructs a Graph from a vertex count and an edge list.
//
// Validation (eager, fail-fast; wrapped errors preserve the sentinel
// for errors.Is):
//   - ErrNonPositiveOrder if n <= 0.
//   - ErrVertexOutOfRange if an endpoint lies outside [0, n).
//   - ErrSelfLoop         if an edge has U == V.
//   - ErrIsolatedVertex   if some vertex has no incident edge.
//
// Duplicate parallel edges are accepted and preserved in input order.
//
// Complexity: O(n + len(edges)). Memory: O(n + len(edges)).
func New(n int, edges []Edge) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrNonPositiveOrder)
	}

	g := &Graph{
		n:     n,
		edges: append([]Edge(nil), edges...),
		adj:   make([][]int, n),
	}

	// Index every edge into the adjacency list, validating endpoints.
	for i, e := range g.edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("New: edge #%d (%d,%d): %w", i, e.U, e.V, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("New: edge #%d (%d,%d): %w", i, e.U, e.V, ErrSelfLoop)
		}
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}

	// Every vertex needs at least one incident edge for a cover to exist.
	for v := 0; v < n; v++ {
		if len(g.adj[v]) == 0 {
			return nil, fmt.Errorf("New: vertex %d: %w", v, ErrIsolatedVertex)
		}
	}

	return g, nil
}

// VertexCount returns the number of vertices n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of input edges, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list in original input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Degree returns the number of edge endpoints incident to v,
// or 0 when v is out of range.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns a copy of the neighbor indices of v, in the order the
// incident edges appeared in the input. Returns nil when v is out of range.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return append([]int(nil), g.adj[v]...)
}

// AdjacencyList returns a deep copy of the adjacency structure, indexed
// by vertex. Mutating the copy does not affect the graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for v := range g.adj {
		out[v] = append([]int(nil), g.adj[v]...)
	}

	return out
}
