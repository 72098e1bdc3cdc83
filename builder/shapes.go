// Package builder provides deterministic example topologies as validated
// core graphs. Every factory documents its exact edge emission order, so
// a fixed call always yields an identical graph.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcover/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodTree     = "BinaryTree"

	minPathVertices     = 2
	minCycleVertices    = 3
	minCompleteVertices = 2
	minStarVertices     = 2
	minTreeVertices     = 2
)

// Path builds the simple path P_n: edges (i-1)—i for i = 1..n-1,
// emitted in ascending i. Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
	}

	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: i - 1, V: i})
	}

	return core.New(n, edges)
}

// Cycle builds the simple cycle C_n: the path edges of P_n followed by
// the closing edge (n-1)—0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}

	edges := make([]core.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: i - 1, V: i})
	}
	edges = append(edges, core.Edge{U: n - 1, V: 0})

	return core.New(n, edges)
}

// Complete builds the complete graph K_n: every unordered pair {i,j},
// i < j, emitted in lexicographic (i,j) order. Requires n ≥ 2 — K_1 has
// an isolated vertex and cannot be covered.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
	}

	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{U: i, V: j})
		}
	}

	return core.New(n, edges)
}

// Star builds the star S_n with center 0 and leaves 1..n-1: edges 0—i in
// ascending i. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
	}

	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: 0, V: i})
	}

	return core.New(n, edges)
}

// BinaryTree builds the complete-binary-tree layout on n vertices:
// vertex i links to children 2i+1 and 2i+2 when they exist, emitted in
// ascending i, left child first. Requires n ≥ 2.
// Complexity: O(n).
func BinaryTree(n int) (*core.Graph, error) {
	if n < minTreeVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodTree, n, minTreeVertices, ErrTooFewVertices)
	}

	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n; i++ {
		if left := 2*i + 1; left < n {
			edges = append(edges, core.Edge{U: i, V: left})
		}
		if right := 2*i + 2; right < n {
			edges = append(edges, core.Edge{U: i, V: right})
		}
	}

	return core.New(n, edges)
}
