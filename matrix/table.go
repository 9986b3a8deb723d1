// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
)

// InfSymbol is printed in place of +Inf entries.
const InfSymbol = "∞"

// FormatValue renders a distance: InfSymbol for +Inf, shortest float form otherwise.
func FormatValue(v float64) string {
	if math.IsInf(v, 1) {
		return InfSymbol
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTable renders m as an aligned table. labels names the rows and columns;
// it must have exactly Rows() entries and the matrix must be square.
func WriteTable(w io.Writer, m *Dense, labels []string) error {
	if m.r != m.c {
		return fmt.Errorf("WriteTable: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if len(labels) != m.r {
		return fmt.Errorf("WriteTable: %d labels for %d rows: %w", len(labels), m.r, ErrOutOfRange)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, l := range labels {
		fmt.Fprintf(tw, "%s\t", l)
	}
	fmt.Fprintln(tw)

	var i, j int
	for i = 0; i < m.r; i++ {
		fmt.Fprintf(tw, "%s\t", labels[i])
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(tw, "%s\t", FormatValue(m.data[i*m.c+j]))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
