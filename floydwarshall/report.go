package floydwarshall

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathlab/matrix"
)

// ReportOptions selects the optional sections of WriteReport.
type ReportOptions struct {
	// Matrix prints the full distance table.
	Matrix bool
	// From and To, when both non-zero, print one reconstructed path.
	From, To int
}

// WriteReport prints the run summary: input size, central vertex, its
// distance vector, its farthest vertex and, optionally, a path query and
// the full distance matrix.
func WriteReport(w io.Writer, g *Graph, r *Result, opts ReportOptions) error {
	fmt.Fprintf(w, "read %d vertices and %d edges (undirected)\n", g.N, len(g.Edges))

	c, sum := Central(r)
	fmt.Fprintf(w, "central vertex: %d (distance sum %s)\n", c, matrix.FormatValue(sum))

	row, err := r.dist.Row(c - 1)
	if err != nil {
		return err
	}
	parts := make([]string, len(row))
	for j, d := range row {
		parts[j] = strconv.Itoa(j+1) + ":" + matrix.FormatValue(d)
	}
	fmt.Fprintf(w, "distances from %d: %s\n", c, strings.Join(parts, " "))

	if f, d, ok := Farthest(r, c); ok {
		fmt.Fprintf(w, "farthest from %d: %d (distance %s)\n", c, f, matrix.FormatValue(d))
	}

	if opts.From != 0 && opts.To != 0 {
		if err = writePath(w, r, opts.From, opts.To); err != nil {
			return err
		}
	}

	if opts.Matrix {
		labels := make([]string, r.n)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		fmt.Fprintln(w, "distance matrix:")
		if err = matrix.WriteTable(w, r.dist, labels); err != nil {
			return err
		}
	}

	return nil
}

func writePath(w io.Writer, r *Result, from, to int) error {
	p, err := r.Path(from, to)
	if err != nil {
		return err
	}
	if len(p) == 0 {
		fmt.Fprintf(w, "path %d -> %d: (no path)\n", from, to)
		return nil
	}
	d, err := r.Distance(from, to)
	if err != nil {
		return err
	}
	hops := make([]string, len(p))
	for i, v := range p {
		hops[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(w, "path %d -> %d: %s (cost %s)\n", from, to, strings.Join(hops, " -> "), matrix.FormatValue(d))

	return nil
}
