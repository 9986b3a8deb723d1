package floydwarshall

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

// ReadGraph parses the undirected graph format:
//
//	<n> <m>
//	<u> <v> <w>
//	...
//
// Blank lines and lines starting with '#' are skipped after the header.
// m is advisory: edges are read until end of input regardless of its value.
// Endpoints are integers in 1..n, weights are non-negative floats.
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}

	n, m, err := parseHeader(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	g, err := NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	g.DeclaredEdges = m

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		u, v, w, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err = g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	klog.V(4).Infof("floydwarshall: parsed n=%d declared m=%d read m=%d", g.N, m, len(g.Edges))

	return g, nil
}

func parseHeader(line string) (n, m int, err error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", line, ErrBadHeader)
	}
	if n, err = strconv.Atoi(f[0]); err != nil || n < 1 {
		return 0, 0, fmt.Errorf("vertex count %q: %w", f[0], ErrBadHeader)
	}
	if m, err = strconv.Atoi(f[1]); err != nil || m < 0 {
		return 0, 0, fmt.Errorf("edge count %q: %w", f[1], ErrBadHeader)
	}

	return n, m, nil
}

func parseEdge(line string) (u, v int, w float64, err error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("%q: %w", line, ErrBadEdge)
	}
	if u, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("endpoint %q: %w", f[0], ErrBadEdge)
	}
	if v, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("endpoint %q: %w", f[1], ErrBadEdge)
	}
	if w, err = strconv.ParseFloat(f[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("weight %q: %w", f[2], ErrBadEdge)
	}

	return u, v, w, nil
}
