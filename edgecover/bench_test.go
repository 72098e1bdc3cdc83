package edgecover_test

import (
	"testing"

	"github.com/katalvlaran/lvlcover/builder"
	"github.com/katalvlaran/lvlcover/edgecover"
	"github.com/katalvlaran/lvlcover/matching"
)

func BenchmarkSolve_Augmenting(b *testing.B) {
	g, err := builder.RandomConnected(500, 1000, 42)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = edgecover.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Kuhn(b *testing.B) {
	g, err := builder.RandomConnected(500, 1000, 42)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = edgecover.Solve(g, edgecover.WithMethod(matching.MethodKuhn)); err != nil {
			b.Fatal(err)
		}
	}
}
