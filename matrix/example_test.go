package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathlab/matrix"
)

// ExampleWriteTable renders a fresh distance matrix: nothing is reachable
// yet except each vertex from itself.
func ExampleWriteTable() {
	d, err := matrix.NewDistance(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = matrix.WriteTable(os.Stdout, d, []string{"a", "b"}); err != nil {
		fmt.Println(err)
	}
	// Output:
	//      a  b
	//   a  0  ∞
	//   b  ∞  0
}

func ExampleDense_RowSum() {
	d, _ := matrix.NewDense(2, 3)
	_ = d.Set(0, 0, 1.5)
	_ = d.Set(0, 2, 2)
	s, _ := d.RowSum(0)
	fmt.Println(matrix.FormatValue(s))
	// Output: 3.5
}
