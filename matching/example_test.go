package matching_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlcover/core"
	"github.com/katalvlaran/lvlcover/matching"
)

// ExampleCompute finds a maximum matching of the path 0—1—2—3—4.
// Only two pairwise-disjoint edges fit on a five-vertex path.
func ExampleCompute() {
	g, err := core.New(5, []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
	})
	if err != nil {
		log.Fatal(err)
	}

	m, err := matching.Compute(g, matching.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("size:", m.Size())
	fmt.Println("pairs:", m.Edges())
	fmt.Println("vertex 4 matched:", m.Covers(4))

	// Output:
	// size: 2
	// pairs: [{0 1} {2 3}]
	// vertex 4 matched: false
}
