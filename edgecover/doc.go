// Package edgecover computes minimum edge covers of an undirected
// core.Graph and verifies candidate covers.
//
// What:
//
//   - Solve(g, opts...): an edge set touching every vertex, built by
//     extending a matching (Gallai's identity:
//     |cover| = V − |matching|). The cover is minimum exactly when the
//     matching is maximum, which the engines guarantee on bipartite
//     graphs; see the matching package for the odd-cycle caveat.
//   - IsEdgeCover(n, edges): pure predicate over any candidate set.
//
// Why:
//
//   - Scheduling and sensor placement: pick the fewest pairwise links so
//     no node is left unattended.
//   - The matching/cover duality makes the optimum certifiable: the
//     returned size can be checked against an independently computed
//     maximum matching.
//
// Determinism:
//
//   - Matched pairs enter the cover in ascending order of their lower
//     endpoint; completion edges follow in ascending vertex order, each
//     being the first incident edge in input order. Fixed input and
//     method always produce the same cover.
//
// Complexity:
//
//   - Solve:       O(V·E) time (matching-bound), O(V + E) memory.
//   - IsEdgeCover: O(V + len(candidate)) time, O(V) memory.
//
// Errors:
//
//   - ErrNilGraph: Solve received a nil graph.
//   - matching.ErrUnknownMethod: unrecognized WithMethod name.
//   - ErrIncompleteCover: reserved by the final self-check; not
//     reachable for graphs built by core.New.
//
// Once core.New has accepted a graph, Solve cannot fail with the default
// options: validation lives entirely at the construction boundary.
package edgecover
