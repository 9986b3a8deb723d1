package floydwarshall

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by parsing, Compute and path queries.
var (
	// ErrEmptyInput indicates the input has no header line at all.
	ErrEmptyInput = errors.New("floydwarshall: empty input")

	// ErrBadHeader indicates the first line is not "<num_vertices> <num_edges>".
	ErrBadHeader = errors.New("floydwarshall: header must be '<num_vertices> <num_edges>'")

	// ErrBadEdge indicates an edge line is not "<u> <v> <weight>".
	ErrBadEdge = errors.New("floydwarshall: edge line must be '<u> <v> <weight>'")

	// ErrVertexOutOfRange indicates a vertex id outside 1..n.
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex out of range")

	// ErrNegativeWeight indicates a negative undirected edge.
	ErrNegativeWeight = errors.New("floydwarshall: negative edge weight")

	// ErrNilGraph indicates a nil *Graph was passed to Compute.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrInconsistentRouting indicates a next-hop walk did not reach its target
	// within the n² step bound.
	ErrInconsistentRouting = errors.New("floydwarshall: routing matrix is inconsistent")
)

// NoHop marks an undefined next hop (unreachable pair).
const NoHop = -1

// Edge is one undirected input edge between vertices U and V.
type Edge struct {
	U, V   int
	Weight float64
}

// Graph is the parsed undirected instance: vertices 1..N and the input edges.
// Parallel edges are kept; Compute lets the cheapest one win.
type Graph struct {
	N int
	// DeclaredEdges is the advisory edge count from the header. It is not
	// cross-checked against len(Edges).
	DeclaredEdges int
	Edges         []Edge
}

// NewGraph returns an empty graph on vertices 1..n.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrBadHeader)
	}

	return &Graph{N: n}, nil
}

// AddEdge appends the undirected edge u-v with weight w.
// Endpoints must lie in 1..N and w must be finite and non-negative.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u < 1 || u > g.N || v < 1 || v > g.N {
		return fmt.Errorf("edge %d-%d with n=%d: %w", u, v, g.N, ErrVertexOutOfRange)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("edge %d-%d weight %v: %w", u, v, w, ErrBadEdge)
	}
	if w < 0 {
		return fmt.Errorf("edge %d-%d weight %v: %w", u, v, w, ErrNegativeWeight)
	}
	g.Edges = append(g.Edges, Edge{U: u, V: v, Weight: w})

	return nil
}
