package bellmanford

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteReport prints the path from the source to dest and its total cost,
// or "(no path)" with an infinite cost.
func WriteReport(w io.Writer, r *Result, dest int) {
	p := r.PathTo(dest)
	d, ok := r.Distance(dest)
	if len(p) == 0 || !ok {
		fmt.Fprintln(w, "Path: (no path)")
		fmt.Fprintln(w, "Total cost: inf")
		return
	}

	hops := make([]string, len(p))
	for i, v := range p {
		hops[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(w, "Path:", strings.Join(hops, " -> "))
	fmt.Fprintln(w, "Total cost:", d)
}
