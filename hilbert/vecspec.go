package hilbert

import (
	"github.com/katalvlaran/lowtopo/bitmask"
	"github.com/katalvlaran/lowtopo/integer"
	"github.com/katalvlaran/lowtopo/matrix"
)

// vecSpec is a candidate basis vector: its coordinates, a cached dot
// product with the hyperplane currently being processed, and a bitmask
// of its non-zero coordinates for fast constraint and dominance checks.
type vecSpec[M bitmask.Mask[M]] struct {
	coords  []integer.Int
	nextHyp integer.Int
	mask    M
}

// newUnitVec returns the pos-th unit vector of the given dimension.
// The cached dot product is left zero until initNextHyp.
func newUnitVec[M bitmask.Mask[M]](pos, dim int, zero M) *vecSpec[M] {
	v := &vecSpec[M]{
		coords: make([]integer.Int, dim),
		mask:   zero.Set(pos, true),
	}
	v.coords[pos] = integer.One()
	return v
}

// initNextHyp refreshes the cached dot product against the given row of
// the subspace matrix.
func (v *vecSpec[M]) initNextHyp(subspace *matrix.Dense, row int) {
	var sum integer.Int
	for i, x := range v.coords {
		if x.IsZero() {
			continue
		}
		e, _ := subspace.At(row, i)
		if e.IsZero() {
			continue
		}
		sum = sum.Add(e.Mul(x))
	}
	v.nextHyp = sum
}

// formSum returns pos + neg coordinate-wise, with the cached dot
// products added and the masks or-ed. The caller guarantees
// pos.sign() > 0 and neg.sign() < 0.
func formSum[M bitmask.Mask[M]](pos, neg *vecSpec[M]) *vecSpec[M] {
	out := &vecSpec[M]{
		coords:  make([]integer.Int, len(pos.coords)),
		nextHyp: pos.nextHyp.Add(neg.nextHyp),
		mask:    pos.mask.Union(neg.mask),
	}
	for i := range pos.coords {
		out.coords[i] = pos.coords[i].Add(neg.coords[i])
	}
	return out
}

// sign returns the sign of the cached dot product.
func (v *vecSpec[M]) sign() int { return v.nextHyp.Sign() }

// leq reports whether v is dominated coordinate-wise by other: the
// non-zero support is a subset and every coordinate is ≤. The mask test
// is the fast way of saying no.
func (v *vecSpec[M]) leq(other *vecSpec[M]) bool {
	if !v.mask.SubsetOf(other.mask) {
		return false
	}
	for i, x := range v.coords {
		if x.Cmp(other.coords[i]) > 0 {
			return false
		}
	}
	return true
}
