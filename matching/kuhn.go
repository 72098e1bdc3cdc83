// Package matching provides Kuhn's per-vertex alternating-DFS engine.
package matching

import "github.com/katalvlaran/lvlcover/core"

// Kuhn computes a matching with per-vertex alternating depth-first
// search (Kuhn's algorithm).
//
// For each free vertex in ascending order, a DFS walks a non-matching
// edge forward and the matching edge of the reached vertex backward,
// marking both endpoints of every matched edge it crosses; on reaching
// a free endpoint it flips the matching pointers along the recursion
// stack. The double marking keeps the alternating path vertex-disjoint,
// so the unwind never overwrites a pointer set by a deeper frame.
//
// The result is maximum on bipartite graphs. On graphs with odd cycles
// it is a valid maximal matching that can fall short of maximum; see
// the package documentation.
//
// Recursion depth is bounded by the vertex count. Prefer Augmenting for
// graphs deep enough to stress the stack; Kuhn is kept as the classical
// reference realization of the same contract.
//
// Complexity: O(V·E). Memory: O(V + E).
func Kuhn(graph *core.Graph) (Matching, error) {
	if graph == nil {
		return Matching{}, ErrNilGraph
	}

	n := graph.VertexCount()
	adj := graph.AdjacencyList()

	mate := make([]int, n)
	for v := range mate {
		mate[v] = Unmatched
	}

	for v := 0; v < n; v++ {
		if mate[v] != Unmatched {
			continue
		}
		used := make([]bool, n)
		// The root itself is off-limits as a rematch target; otherwise a
		// search through an odd cycle could pair the root twice and
		// desynchronize the mate array.
		used[v] = true
		tryAugment(v, adj, mate, used)
	}

	return Matching{Mate: mate}, nil
}

// tryAugment attempts to extend the matching with an alternating path
// rooted at v. Reports whether an augmenting path was found and applied.
func tryAugment(v int, adj [][]int, mate []int, used []bool) bool {
	for _, to := range adj[v] {
		if used[to] {
			continue
		}
		used[to] = true

		w := mate[to]
		if w == Unmatched {
			mate[to] = v
			mate[v] = to

			return true
		}

		// Lock the current partner before descending. A deeper frame must
		// not reenter w through an odd cycle: the unwind would then flip
		// mate pointers twice and leave the array asymmetric.
		used[w] = true
		if tryAugment(w, adj, mate, used) {
			mate[to] = v
			mate[v] = to

			return true
		}
	}

	return false
}
