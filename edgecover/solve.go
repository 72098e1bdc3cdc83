// Package edgecover implements the Gallai construction of a minimum edge
// cover from a maximum matching.
package edgecover

import (
	"github.com/katalvlaran/lvlcover/core"
	"github.com/katalvlaran/lvlcover/matching"
)

// Solve computes a minimum edge cover of g: the smallest edge set in
// which every vertex of g is an endpoint of at least one edge.
//
// Steps (classical Gallai construction):
//  1. Compute a matching with the engine chosen by WithMethod
//     (augmenting-path BFS by default).
//  2. Include every matched pair and mark both endpoints covered.
//  3. For each still-uncovered vertex in ascending order, add the first
//     edge in input order incident to it, then mark both endpoints.
//  4. Return the accumulated set; edges are normalized (lower endpoint
//     first) and duplicates removed.
//
// The cover size equals VertexCount − matching size, which is minimum
// exactly when the matching is maximum. The engines guarantee maximum
// on bipartite graphs; on graphs with odd cycles the cover can exceed
// the optimum by the engines' matching shortfall (see package
// matching). Solve is deterministic for a fixed input and method.
//
// Error conditions:
//   - ErrNilGraph: g is nil.
//   - matching.ErrUnknownMethod: WithMethod received an unknown name.
//
// Complexity: O(V·E), dominated by the matching engine.
// Memory: O(V + E).
func Solve(g *core.Graph, opts ...Option) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Resolve functional options onto the defaults.
	resolved := DefaultOptions()
	for _, opt := range opts {
		opt(&resolved)
	}

	// 1. Maximum matching via the selected engine.
	m, err := matching.Compute(g, matching.Options{Method: resolved.Method})
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	covered := make([]bool, n)
	seen := make(map[core.Edge]struct{}, n)
	cover := make([]core.Edge, 0, n-m.Size())

	// 2. Every matched pair joins the cover.
	for _, e := range m.Edges() {
		cover = append(cover, e)
		seen[e] = struct{}{}
		covered[e.U] = true
		covered[e.V] = true
	}

	// 3. Attach one incident edge to every vertex the matching missed.
	edges := g.Edges()
	for v := 0; v < n; v++ {
		if covered[v] {
			continue
		}
		for _, e := range edges {
			if e.U != v && e.V != v {
				continue
			}
			ne := e.Normalize()
			if _, dup := seen[ne]; !dup {
				cover = append(cover, ne)
				seen[ne] = struct{}{}
			}
			covered[e.U] = true
			covered[e.V] = true

			break
		}
	}

	// 4. Coverage self-check; unreachable for a graph built by core.New.
	if !IsEdgeCover(n, cover) {
		return nil, ErrIncompleteCover
	}

	return cover, nil
}
