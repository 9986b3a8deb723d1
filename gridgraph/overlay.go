package gridgraph

// Overlay returns the map rows with every route cell except 'S' and 'G'
// replaced by mark. The grid itself is not modified.
func Overlay(g *Grid, path []Cell, mark rune) []string {
	rows := make([][]rune, g.Rows)
	for i, row := range g.cells {
		rows[i] = append([]rune(nil), row...)
	}
	for _, c := range path {
		if !g.InBounds(c) || c == g.Start || c == g.Goal {
			continue
		}
		rows[c.Row][c.Col] = mark
	}

	out := make([]string, g.Rows)
	for i, row := range rows {
		out[i] = string(row)
	}

	return out
}
