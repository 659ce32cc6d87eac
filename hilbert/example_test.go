package hilbert_test

import (
	"fmt"

	"github.com/katalvlaran/lowtopo/hilbert"
	"github.com/katalvlaran/lowtopo/integer"
	"github.com/katalvlaran/lowtopo/matrix"
)

// ExampleEnumerate computes the Hilbert basis of the cone y = z inside
// the non-negative octant.
func ExampleEnumerate() {
	subspace, _ := matrix.FromRows([][]int64{{0, 1, -1}})

	_ = hilbert.Enumerate(func(v []integer.Int) {
		fmt.Println(v)
	}, subspace, hilbert.None())
	// Output:
	// [1 0 0]
	// [0 1 1]
}
