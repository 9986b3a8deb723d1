package matrix_test

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/pathlab/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

// randomDistance fills every off-diagonal cell with a deterministic weight.
func randomDistance(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDistance(n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Intn(4) > 0 {
				_ = d.Set(i, j, float64(rng.Intn(100)+1))
			}
		}
	}
	return d
}

func BenchmarkNewDistance(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkM, _ = matrix.NewDistance(n)
			}
		})
	}
}

func BenchmarkRowSum(b *testing.B) {
	for _, n := range benchSizes {
		d := randomDistance(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkF, _ = d.RowSum(i % n)
			}
		})
	}
}

func BenchmarkWriteTable(b *testing.B) {
	for _, n := range benchSizes {
		d := randomDistance(b, n)
		labels := make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := matrix.WriteTable(io.Discard, d, labels); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
