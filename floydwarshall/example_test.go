package floydwarshall_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathlab/floydwarshall"
)

// ExampleCompute parses a triangle where the direct 1-3 edge is more expensive
// than the detour through 2, then reconstructs that detour from the routing table.
func ExampleCompute() {
	g, err := floydwarshall.ReadGraph(strings.NewReader("3 3\n1 2 1\n2 3 1\n1 3 5\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := floydwarshall.Compute(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := res.Distance(1, 3)
	p, _ := res.Path(1, 3)
	c, sum := floydwarshall.Central(res)
	fmt.Println("D[1][3] =", d)
	fmt.Println("path:", p)
	fmt.Println("central:", c, "sum:", sum)

	// Output:
	// D[1][3] = 2
	// path: [1 2 3]
	// central: 2 sum: 2
}
