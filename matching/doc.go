// Package matching computes maximum-cardinality matchings on an
// undirected core.Graph.
//
// What:
//
//   - Matching: a symmetric partial pairing of vertices (Mate slice),
//     with Size, Covers, and Edges accessors.
//   - Augmenting(g): greedy seed + repeated multi-source BFS augmenting
//     paths. Iterative; the recommended default.
//   - Kuhn(g): classical per-vertex alternating DFS.
//   - Compute(g, opts): options-driven dispatch between the two.
//
// Why:
//
//   - A maximum matching is the load-bearing half of the Gallai
//     construction for minimum edge covers: cover size = V − |matching|.
//   - Two engines with one contract keep the matching strategy swappable
//     and let tests cross-check one against the other.
//
// Both engines grow the matching along augmenting paths: paths between
// two free vertices that alternate non-matching and matching edges.
// Each augmentation adds one pair, so at most O(V) phases run. Neither
// engine contracts blossoms, so the guarantee is conditional: on
// bipartite graphs the result is a true maximum matching; on graphs
// with odd cycles it is a maximal matching that can miss augmenting
// paths threading through a cycle and fall short of maximum.
//
// Complexity:
//
//   - Augmenting: O(V·E) time, O(V + E) memory, no recursion.
//   - Kuhn:       O(V·E) time, O(V + E) memory, recursion depth ≤ V.
//
// Errors:
//
//   - ErrNilGraph: nil graph supplied.
//   - ErrUnknownMethod: Compute received an unrecognized Options.Method.
//
// Engines never fail on a graph built by core.New; an empty matching is
// a legal result.
package matching
