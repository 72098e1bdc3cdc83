package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcover/core"
)

// ExampleNew builds a small cycle and inspects it.
//
//	    0───1
//	    │   │
//	    3───2
func ExampleNew() {
	g, err := core.New(4, []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
	})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("neighbors of 0:", g.Neighbors(0))

	// An isolated vertex makes an edge cover impossible, so the
	// constructor refuses it up front.
	_, err = core.New(3, []core.Edge{{U: 0, V: 1}})
	fmt.Println("isolated rejected:", errors.Is(err, core.ErrIsolatedVertex))

	// Output:
	// vertices: 4
	// edges: 4
	// neighbors of 0: [1 3]
	// isolated rejected: true
}
