package bellmanford_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/pathlab/bellmanford"
)

// ExampleBellmanFord routes around an expensive direct edge using a
// negative-weight shortcut.
func ExampleBellmanFord() {
	in := "4\t4\n0\t1\t4\n0\t2\t5\n2\t1\t-3\n1\t3\t1\n"
	g, err := bellmanford.ReadGraph(strings.NewReader(in))
	if err != nil {
		panic(err)
	}
	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0))
	if err != nil {
		panic(err)
	}
	bellmanford.WriteReport(os.Stdout, res, g.N-1)

	// Output:
	// Path: 0 -> 2 -> 1 -> 3
	// Total cost: 3
}
