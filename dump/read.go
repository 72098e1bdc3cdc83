package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlcover/core"
)

// Read parses the visualizer interchange format produced by Write and
// reconstructs the graph plus the cover edge set. The cover edges are
// returned exactly as stored; validating them against the graph is the
// caller's concern (see edgecover.IsEdgeCover).
//
// Error conditions:
//   - ErrBadHeader: counts line missing, malformed, or negative.
//   - ErrBadEdge / ErrTruncated: a broken or missing edge entry.
//   - core sentinels (wrapped): the edge section does not form a valid
//     coverable graph.
func Read(r io.Reader) (*core.Graph, []core.Edge, error) {
	br := bufio.NewReader(r)

	var n, total, k int
	if _, err := fmt.Fscan(br, &n, &total, &k); err != nil {
		return nil, nil, fmt.Errorf("dump: header: %v: %w", err, ErrBadHeader)
	}
	if total < 0 || k < 0 {
		return nil, nil, fmt.Errorf("dump: header counts %d %d: %w", total, k, ErrBadHeader)
	}

	edges, err := readEdges(br, total)
	if err != nil {
		return nil, nil, err
	}
	cover, err := readEdges(br, k)
	if err != nil {
		return nil, nil, err
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, nil, fmt.Errorf("dump: %w", err)
	}

	return g, cover, nil
}

// ReadGraph parses the plain graph input format of the demo driver:
// a header line "V E" followed by E whitespace-separated "u v" entries.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	br := bufio.NewReader(r)

	var n, m int
	if _, err := fmt.Fscan(br, &n, &m); err != nil {
		return nil, fmt.Errorf("dump: header: %v: %w", err, ErrBadHeader)
	}
	if m < 0 {
		return nil, fmt.Errorf("dump: header count %d: %w", m, ErrBadHeader)
	}

	edges, err := readEdges(br, m)
	if err != nil {
		return nil, err
	}

	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}

	return g, nil
}

// ReadGraphFile opens path and delegates to ReadGraph.
func ReadGraphFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	defer f.Close()

	return ReadGraph(f)
}

// readEdges scans count whitespace-separated "u v" pairs.
func readEdges(br io.Reader, count int) ([]core.Edge, error) {
	edges := make([]core.Edge, 0, count)
	for i := 0; i < count; i++ {
		var u, v int
		if _, err := fmt.Fscan(br, &u, &v); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("dump: edge #%d: %w", i, ErrTruncated)
			}

			return nil, fmt.Errorf("dump: edge #%d: %v: %w", i, err, ErrBadEdge)
		}
		edges = append(edges, core.Edge{U: u, V: v})
	}

	return edges, nil
}
