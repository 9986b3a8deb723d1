package gridgraph

import "errors"

// Sentinel errors for grid parsing and routing.
var (
	// ErrEmptyInput indicates the file is empty or its header line is blank.
	ErrEmptyInput = errors.New("gridgraph: empty input or missing header")
	// ErrBadHeader indicates the header is not two positive integers "<rows> <cols>".
	ErrBadHeader = errors.New("gridgraph: header must be '<rows> <cols>'")
	// ErrTruncatedInput indicates fewer grid lines than the header declared.
	ErrTruncatedInput = errors.New("gridgraph: input ended before all grid rows were read")
	// ErrMissingStart indicates no 'S' cell.
	ErrMissingStart = errors.New("gridgraph: grid must contain a start cell 'S'")
	// ErrMissingGoal indicates no 'G' cell.
	ErrMissingGoal = errors.New("gridgraph: grid must contain a goal cell 'G'")
	// ErrDuplicateMarker indicates more than one 'S' or more than one 'G'.
	ErrDuplicateMarker = errors.New("gridgraph: grid must contain exactly one 'S' and one 'G'")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNilGrid indicates a nil *Grid was passed to ShortestPath.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
)

// Map symbols.
const (
	Start    = 'S'
	Goal     = 'G'
	Obstacle = '#'
	// PathMark is the default marker Overlay draws on route cells.
	PathMark = '*'
)

// DefaultCost is the entry cost of any passable character missing from Costs.
const DefaultCost = 1

// Costs is the fixed entry-cost table.
var Costs = map[rune]int{
	'.':   1,
	'=':   1,
	'~':   3,
	Start: 1,
	Goal:  1,
}

// Cell addresses one grid square.
type Cell struct {
	Row, Col int
}

// Route is the outcome of ShortestPath.
type Route struct {
	// Path lists cells from start to goal inclusive; empty when Found is false.
	Path []Cell
	// Cost is the summed entry cost along Path; meaningless when Found is false.
	Cost int
	// Expanded counts every heap pop, stale entries included.
	Expanded int
	// Found reports whether the goal was reached.
	Found bool
}

// Steps returns the number of moves along the route (len(Path)-1), 0 if none.
func (r *Route) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
