package edgecover

import "github.com/katalvlaran/lvlcover/core"

// IsEdgeCover reports whether candidate covers every vertex in [0, n):
// each vertex must be an endpoint of at least one candidate edge.
//
// The predicate is pure and independent of how candidate was produced;
// it validates caller-supplied covers just as well as Solve output.
// Endpoints outside [0, n) contribute no coverage. For n <= 0 there is
// no vertex to cover and the result is vacuously true.
//
// Complexity: O(n + len(candidate)). Memory: O(n).
func IsEdgeCover(n int, candidate []core.Edge) bool {
	if n <= 0 {
		return true
	}

	covered := make([]bool, n)
	for _, e := range candidate {
		if e.U >= 0 && e.U < n {
			covered[e.U] = true
		}
		if e.V >= 0 && e.V < n {
			covered[e.V] = true
		}
	}

	for v := 0; v < n; v++ {
		if !covered[v] {
			return false
		}
	}

	return true
}
