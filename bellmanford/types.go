package bellmanford

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates the input has no header line.
	ErrEmptyInput = errors.New("bellmanford: empty input")

	// ErrBadHeader indicates the first line is not "<n>\t<m>".
	ErrBadHeader = errors.New("bellmanford: header must be '<n>\\t<m>'")

	// ErrBadEdge indicates an edge line is not "<u>\t<v>\t<w>".
	ErrBadEdge = errors.New("bellmanford: edge line must be '<u>\\t<v>\\t<w>'")

	// ErrTruncatedInput indicates fewer edge lines than the header declared.
	ErrTruncatedInput = errors.New("bellmanford: input ended before all edges were read")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("bellmanford: vertex out of range")

	// ErrSourceOutOfRange indicates the requested source is outside 0..n-1.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrNilGraph indicates a nil *Graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrDistanceOverflow indicates a candidate distance outside the int64 range.
	ErrDistanceOverflow = errors.New("bellmanford: distance overflows int64")
)

const (
	// Inf fills Dist for vertices not reached from the source. Reachability
	// itself is recorded in Result.Reached, so a real distance equal to Inf is
	// still reported as reached.
	Inf int64 = math.MaxInt64

	// NoPredecessor marks a vertex with no recorded predecessor.
	NoPredecessor = -1
)

// Edge is a directed, weighted edge From → To.
type Edge struct {
	From, To int
	Weight   int64
}

// Graph is a directed graph on vertices 0..N-1.
type Graph struct {
	N     int
	Edges []Edge
}

// Options configures BellmanFord.
type Options struct {
	Source int // starting vertex, default 0
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// DefaultOptions returns Options with Source = 0.
func DefaultOptions() Options {
	return Options{Source: 0}
}

// Result is the outcome of one BellmanFord run.
type Result struct {
	Source int
	Dist   []int64 // Inf when unreached
	Pred   []int   // NoPredecessor when unset
	// Reached[v] is true once v has a distance from Source.
	Reached []bool
	// Passes is the number of full edge scans performed (≤ n−1).
	Passes int
	// Converged is true when some pass made zero updates (always for n == 1).
	// False means all n−1 passes still changed something.
	Converged bool
}
