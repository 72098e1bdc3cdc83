// Package matching provides the greedy-seed + BFS augmenting-path engine.
package matching

import "github.com/katalvlaran/lvlcover/core"

// Augmenting computes a matching by greedy seeding followed by repeated
// augmenting-path refinement.
//
// Steps:
//  1. Greedy seed: scan edges in input order, pairing any two still-free
//     endpoints.
//  2. Search: run one multi-source BFS from every free vertex, walking a
//     non-matching edge forward and the matching edge of the reached
//     vertex backward. Each BFS tree remembers its root; an edge into a
//     free vertex of a different tree closes an augmenting path.
//  3. Augment: flip the matching status of every edge on the discovered
//     path, growing the matching by exactly one pair.
//  4. Repeat from 2 until the alternating forest finds no augmenting
//     path. On bipartite graphs that matching is maximum; on graphs
//     with odd cycles it is maximal but can fall short of maximum (see
//     the package documentation).
//
// Determinism: the seed scans edges in input order and the BFS scans
// vertices in ascending index and neighbors in input order, so a fixed
// input always yields the same matching.
//
// Complexity: O(V·E) — at most O(V) phases of an O(V+E) search.
// Memory: O(V + E).
func Augmenting(graph *core.Graph) (Matching, error) {
	if graph == nil {
		return Matching{}, ErrNilGraph
	}

	n := graph.VertexCount()
	adj := graph.AdjacencyList()

	mate := make([]int, n)
	for v := range mate {
		mate[v] = Unmatched
	}

	// 1. Greedy seed over edges in input order.
	for _, e := range graph.Edges() {
		if mate[e.U] == Unmatched && mate[e.V] == Unmatched {
			mate[e.U] = e.V
			mate[e.V] = e.U
		}
	}

	// 2–4. Augment one path at a time until none remains.
	for augmentOnce(adj, mate) {
	}

	return Matching{Mate: mate}, nil
}

// augmentOnce grows an alternating BFS forest rooted at the free
// vertices and applies the first augmenting path it finds. Reports
// whether the matching grew.
func augmentOnce(adj [][]int, mate []int) bool {
	n := len(adj)

	parent := make([]int, n)
	root := make([]int, n)
	for v := range parent {
		parent[v] = -1
		root[v] = -1
	}
	visited := make([]bool, n)

	// Seed the forest with every free vertex as its own tree root.
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if mate[v] == Unmatched {
			queue = append(queue, v)
			visited[v] = true
			root[v] = v
		}
	}

	// BFS: cross a free edge to v; if v is matched, continue the search
	// from its partner so the path alternates free/matched edges. Free
	// vertices are all roots, so the far endpoint of an augmenting path
	// is recognized as a free vertex in a different tree; a free vertex
	// in the same tree would close an odd cycle and is skipped.
	end := -1
	for len(queue) > 0 && end == -1 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range adj[u] {
			if mate[v] == Unmatched && root[v] != root[u] {
				parent[v] = u
				end = v
				break
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			root[v] = root[u]

			w := mate[v]
			visited[w] = true
			parent[w] = v
			root[w] = root[u]
			queue = append(queue, w)
		}
	}
	if end == -1 {
		return false
	}

	// Flip matching pointers along the parent chain. Every second hop is
	// the old matched edge; overwriting its mates retires it.
	for v := end; v != -1 && parent[v] != -1; {
		u := parent[v]
		prev := parent[u]
		mate[v] = u
		mate[u] = v
		v = prev
	}

	return true
}
