package gridgraph

import "fmt"

// Grid is an immutable rectangular character map with located start and goal.
type Grid struct {
	Rows, Cols int
	Start      Cell
	Goal       Cell
	cells      [][]rune
}

// neighborOffsets lists the 4-connected moves in up, down, left, right order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGrid builds a Grid from equal-length rows. It deep-copies the input and
// locates exactly one 'S' and one 'G'.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
	}
	w := len(cells[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for i, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), w, ErrNonRectangular)
		}
	}

	g := &Grid{Rows: len(cells), Cols: w, cells: cells}
	var err error
	if g.Start, err = g.locate(Start, ErrMissingStart); err != nil {
		return nil, err
	}
	if g.Goal, err = g.locate(Goal, ErrMissingGoal); err != nil {
		return nil, err
	}

	return g, nil
}

// locate returns the single cell holding ch, scanning row-major.
func (g *Grid) locate(ch rune, missing error) (Cell, error) {
	var found Cell
	count := 0
	for r, row := range g.cells {
		for c, v := range row {
			if v != ch {
				continue
			}
			if count == 0 {
				found = Cell{Row: r, Col: c}
			}
			count++
		}
	}
	switch {
	case count == 0:
		return Cell{}, missing
	case count > 1:
		return Cell{}, fmt.Errorf("%d cells hold %q: %w", count, ch, ErrDuplicateMarker)
	}

	return found, nil
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the character at c. c must be in bounds.
func (g *Grid) At(c Cell) rune {
	return g.cells[c.Row][c.Col]
}

// Passable reports whether c is inside the grid and not an obstacle.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.At(c) != Obstacle
}

// Cost returns the cost of entering c.
func (g *Grid) Cost(c Cell) int {
	if w, ok := Costs[g.At(c)]; ok {
		return w
	}

	return DefaultCost
}

// Neighbors4 appends the passable 4-neighbors of c to dst and returns it.
func (g *Grid) Neighbors4(dst []Cell, c Cell) []Cell {
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Lines returns a copy of the map rows as strings.
func (g *Grid) Lines() []string {
	out := make([]string, g.Rows)
	for i, row := range g.cells {
		out[i] = string(row)
	}

	return out
}
