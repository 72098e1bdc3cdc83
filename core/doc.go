// Package core provides the graph model used across lvlcover: a dense,
// immutable, integer-indexed undirected graph.
//
// What:
//
//   - Edge is an unordered pair of vertex indices with value semantics.
//   - Graph stores the vertex count, the input edge list (order
//     preserved), and an adjacency list computed once at construction.
//   - New validates everything eagerly; once a Graph exists, every
//     accessor is total and the structure is read-only.
//
// Why:
//
//   - Edge cover algorithms need a graph whose impossibility conditions
//     (isolated vertices, bad indices) are ruled out before any search
//     starts, so the algorithms themselves stay infallible.
//
// Complexity:
//
//   - New:           O(V + E), Memory: O(V + E).
//   - Neighbors(v):  O(deg(v)) per call (returns a copy).
//   - AdjacencyList: O(V + E) per call (returns a deep copy).
//
// Errors:
//
//   - ErrNonPositiveOrder: vertex count n <= 0.
//   - ErrVertexOutOfRange: edge endpoint outside [0, n).
//   - ErrSelfLoop: edge with identical endpoints. Loops are rejected
//     because a vertex must never appear as its own neighbor; accepting
//     them would let a single loop "cover" a vertex and break the
//     Gallai size identity the solver relies on.
//   - ErrIsolatedVertex: a vertex with no incident edge (edge cover
//     impossible).
package core
