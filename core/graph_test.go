package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcover/core"
)

// triangleEdges returns the edge list of C3 in fixed input order.
func triangleEdges() []core.Edge {
	return []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
}

// TestNew_Validation exercises every construction rejection of §New via a
// sentinel-driven table; errors must match with errors.Is, not strings.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []core.Edge
		want  error
	}{
		{name: "zero vertices", n: 0, edges: nil, want: core.ErrNonPositiveOrder},
		{name: "negative vertices", n: -3, edges: nil, want: core.ErrNonPositiveOrder},
		{name: "endpoint above range", n: 3, edges: []core.Edge{{U: 0, V: 3}}, want: core.ErrVertexOutOfRange},
		{name: "negative endpoint", n: 3, edges: []core.Edge{{U: -1, V: 1}}, want: core.ErrVertexOutOfRange},
		{name: "self-loop", n: 2, edges: []core.Edge{{U: 0, V: 1}, {U: 1, V: 1}}, want: core.ErrSelfLoop},
		{name: "isolated vertex", n: 3, edges: []core.Edge{{U: 0, V: 1}}, want: core.ErrIsolatedVertex},
		{name: "no edges at all", n: 1, edges: nil, want: core.ErrIsolatedVertex},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.New(tc.n, tc.edges)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_Triangle verifies the happy path: counts, edge order, degrees
// and adjacency of a valid graph.
func TestNew_Triangle(t *testing.T) {
	g, err := core.New(3, triangleEdges())
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, triangleEdges(), g.Edges(), "input edge order must be preserved")

	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))

	// Neighbor order follows the input edge order.
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int{1, 0}, g.Neighbors(2))
}

// TestNew_DuplicateEdgesAccepted verifies parallel edges survive intact:
// both copies remain in the edge list and both contribute to degree.
func TestNew_DuplicateEdgesAccepted(t *testing.T) {
	g, err := core.New(2, []core.Edge{{U: 0, V: 1}, {U: 1, V: 0}})
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, []int{1, 1}, g.Neighbors(0))
}

// TestGraph_AccessorsReturnCopies verifies immutability: mutating any
// returned slice must not leak back into the graph.
func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g, err := core.New(3, triangleEdges())
	require.NoError(t, err)

	edges := g.Edges()
	edges[0] = core.Edge{U: 2, V: 2}
	assert.Equal(t, triangleEdges(), g.Edges())

	nbrs := g.Neighbors(0)
	nbrs[0] = 99
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))

	adj := g.AdjacencyList()
	adj[1][0] = 99
	assert.Equal(t, []int{0, 2}, g.AdjacencyList()[1])
}

// TestGraph_OutOfRangeAccess verifies accessors degrade gracefully
// instead of panicking on bad indices.
func TestGraph_OutOfRangeAccess(t *testing.T) {
	g, err := core.New(2, []core.Edge{{U: 0, V: 1}})
	require.NoError(t, err)

	assert.Zero(t, g.Degree(-1))
	assert.Zero(t, g.Degree(2))
	assert.Nil(t, g.Neighbors(-1))
	assert.Nil(t, g.Neighbors(2))
}

// TestEdge_NormalizeEqual covers undirected edge identity.
func TestEdge_NormalizeEqual(t *testing.T) {
	assert.Equal(t, core.Edge{U: 1, V: 4}, core.Edge{U: 4, V: 1}.Normalize())
	assert.Equal(t, core.Edge{U: 1, V: 4}, core.Edge{U: 1, V: 4}.Normalize())

	assert.True(t, core.Edge{U: 2, V: 5}.Equal(core.Edge{U: 5, V: 2}))
	assert.True(t, core.Edge{U: 2, V: 5}.Equal(core.Edge{U: 2, V: 5}))
	assert.False(t, core.Edge{U: 2, V: 5}.Equal(core.Edge{U: 2, V: 4}))
}
