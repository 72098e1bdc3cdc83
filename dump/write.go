// Package dump implements the text interchange format shared with the
// external visualizer.
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlcover/core"
)

// Write emits a graph and its cover in the visualizer format:
//
//	n totalEdgeCount coverEdgeCount
//	u v    — totalEdgeCount graph edges, input order
//	u v    — coverEdgeCount cover edges
//
// The layout is a contract with the external visualization tool and must
// be preserved verbatim.
//
// Complexity: O(V + E).
func Write(w io.Writer, g *core.Graph, cover []core.Edge) error {
	if g == nil {
		return ErrNilGraph
	}

	edges := g.Edges()
	if _, err := fmt.Fprintf(w, "%d %d %d\n", g.VertexCount(), len(edges), len(cover)); err != nil {
		return fmt.Errorf("dump: write header: %w", err)
	}

	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("dump: write edge: %w", err)
		}
	}
	for _, e := range cover {
		if _, err := fmt.Fprintf(w, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("dump: write cover edge: %w", err)
		}
	}

	return nil
}

// WriteFile writes the interchange format to path, creating or
// truncating the file.
func WriteFile(path string, g *core.Graph, cover []core.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	if err = Write(f, g, cover); err != nil {
		_ = f.Close()

		return err
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	return nil
}
