package gridgraph

import (
	"fmt"
	"io"
)

// WriteReport prints the route summary and the map with the route drawn
// using mark, or a "No path found." block when the goal was not reached.
func WriteReport(w io.Writer, g *Grid, r *Route, mark rune) {
	if !r.Found {
		fmt.Fprintln(w, "No path found.")
		fmt.Fprintln(w, "Total cost: inf")
		fmt.Fprintf(w, "Expanded nodes: %d\n", r.Expanded)
		return
	}

	fmt.Fprintln(w, "Path found! [Dijkstra]")
	fmt.Fprintf(w, "Total cost: %d\n", r.Cost)
	fmt.Fprintf(w, "Steps (moves): %d\n", r.Steps())
	fmt.Fprintf(w, "Expanded nodes: %d\n", r.Expanded)
	fmt.Fprintf(w, "\nGrid with path '%c':\n\n", mark)
	for _, line := range Overlay(g, r.Path, mark) {
		fmt.Fprintln(w, line)
	}
}
