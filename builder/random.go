package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlcover/core"
)

const methodRandomConnected = "RandomConnected"

// RandomConnected builds a connected random graph on n vertices: a chain
// 0—1—…—(n-1) guarantees connectivity (and rules out isolated vertices),
// then extra chords with distinct endpoints are drawn from a rand.Rand
// seeded with seed. Parallel duplicates of existing edges may occur and
// are kept; core.New accepts them.
//
// Requires n ≥ 2 and extra ≥ 0. Deterministic per (n, extra, seed).
// Complexity: O(n + extra) expected.
func RandomConnected(n, extra int, seed int64) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minPathVertices, ErrTooFewVertices)
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d: %w", methodRandomConnected, extra, ErrBadParameter)
	}

	// Fixed seed so generated graphs are reproducible across runs.
	rng := rand.New(rand.NewSource(seed))

	edges := make([]core.Edge, 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: i - 1, V: i})
	}

	for added := 0; added < extra; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			// Skip loops; only distinct-endpoint chords count.
			continue
		}
		edges = append(edges, core.Edge{U: u, V: v})
		added++
	}

	return core.New(n, edges)
}
