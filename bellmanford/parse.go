package bellmanford

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

// ReadGraphFile opens path and parses it with ReadGraph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ReadGraph parses a tab-separated header and exactly m directed edge lines.
// Lines after the m-th edge are ignored.
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}

	head, err := splitInts(sc.Text(), 2)
	if err != nil || head[0] < 1 || head[1] < 0 {
		return nil, fmt.Errorf("line 1 %q: %w", sc.Text(), ErrBadHeader)
	}
	n, m := int(head[0]), int(head[1])

	g := &Graph{N: n, Edges: make([]Edge, 0, m)}
	for i := 0; i < m; i++ {
		lineNo := i + 2
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("line %d: got %d of %d edges: %w", lineNo, i, m, ErrTruncatedInput)
		}
		f, err := splitInts(sc.Text(), 3)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, sc.Text(), ErrBadEdge)
		}
		u, v := int(f[0]), int(f[1])
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("line %d: edge %d->%d with n=%d: %w", lineNo, u, v, n, ErrVertexOutOfRange)
		}
		g.Edges = append(g.Edges, Edge{From: u, To: v, Weight: f[2]})
	}
	klog.V(4).Infof("bellmanford: parsed n=%d m=%d", n, m)

	return g, nil
}

// splitInts splits a trimmed line on tabs and parses exactly want integers.
func splitInts(line string, want int) ([]int64, error) {
	parts := strings.Split(strings.TrimSpace(line), "\t")
	if len(parts) != want {
		return nil, fmt.Errorf("want %d fields, got %d", want, len(parts))
	}
	out := make([]int64, want)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
