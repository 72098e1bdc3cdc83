package builder_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlcover/builder"
	"github.com/katalvlaran/lvlcover/edgecover"
)

// ExampleComplete builds K4 and covers it with a perfect matching:
// two edges suffice for four vertices.
func ExampleComplete() {
	g, err := builder.Complete(4)
	if err != nil {
		log.Fatal(err)
	}

	cover, err := edgecover.Solve(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("cover:", cover)

	// Output:
	// edges: 6
	// cover: [{0 1} {2 3}]
}
