package hilbert

import (
	"sort"

	"github.com/katalvlaran/lowtopo/matrix"
)

// rowProfile caches the sparsity counts that drive the hyperplane
// processing order.
type rowProfile struct {
	nonZero  int
	positive int
}

// profileRow counts the non-zero and strictly positive entries of a row.
func profileRow(subspace *matrix.Dense, row int) rowProfile {
	var p rowProfile
	for j := 0; j < subspace.Cols(); j++ {
		v, _ := subspace.At(row, j)
		switch {
		case v.Sign() > 0:
			p.nonZero++
			p.positive++
		case v.Sign() < 0:
			p.nonZero++
		}
	}
	return p
}

// orderHyperplanes returns the processing order of the subspace rows:
// the first initialRows rows stay in caller order, and the remainder
// are sorted sparsest-first (fewest non-zero entries, then fewest
// positive entries, then original index for determinism). Sparse,
// mostly-negative hyperplanes tend to keep the intermediate bases
// small.
func orderHyperplanes(subspace *matrix.Dense, initialRows int) []int {
	n := subspace.Rows()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if initialRows > n {
		initialRows = n
	}

	profiles := make([]rowProfile, n)
	for i := initialRows; i < n; i++ {
		profiles[i] = profileRow(subspace, i)
	}

	tail := order[initialRows:]
	sort.SliceStable(tail, func(a, b int) bool {
		pa, pb := profiles[tail[a]], profiles[tail[b]]
		if pa.nonZero != pb.nonZero {
			return pa.nonZero < pb.nonZero
		}
		if pa.positive != pb.positive {
			return pa.positive < pb.positive
		}
		return tail[a] < tail[b]
	})
	return order
}
