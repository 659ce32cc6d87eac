package hilbert

import (
	"github.com/katalvlaran/lowtopo/bitmask"
	"github.com/katalvlaran/lowtopo/integer"
	"github.com/katalvlaran/lowtopo/matrix"
)

// Action receives one Hilbert basis vector. The slice is fresh and
// owned by the callee.
type Action func(v []integer.Int)

// Enumerate computes the Hilbert basis of the intersection of the
// non-negative orthant with the subspace S·x = 0, subject to the given
// validity constraints, and feeds each basis vector to action.
//
// Each row of subspace is one hyperplane through the origin; the number
// of columns is the ambient dimension. Pass None() (or nil) for an
// unconstrained enumeration.
//
// The bitmask flavour is chosen here from the ambient dimension, and
// the enumeration proper is instantiated once per flavour.
func Enumerate(action Action, subspace *matrix.Dense,
	constraints *ValidityConstraints, opts ...Option) error {
	if action == nil || subspace == nil {
		return ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	dim := subspace.Cols()
	if dim == 0 {
		// Nothing lives in a zero-dimensional space.
		return nil
	}

	switch {
	case dim <= 64:
		return enumerateWith[bitmask.Small](bitmask.Small(0), action, subspace, constraints, o)
	case dim <= 128:
		return enumerateWith[bitmask.Wide](bitmask.Wide{}, action, subspace, constraints, o)
	default:
		return enumerateWith[bitmask.Huge](bitmask.NewHuge(dim), action, subspace, constraints, o)
	}
}

// enumerateWith is the width-instantiated enumeration routine.
func enumerateWith[M bitmask.Mask[M]](zero M, action Action,
	subspace *matrix.Dense, constraints *ValidityConstraints, o Options) error {
	dim := subspace.Cols()
	nEqns := subspace.Rows()

	masks, err := constraintMasks(constraints, zero, dim)
	if err != nil {
		return err
	}

	if nEqns == 0 {
		// No hyperplanes: the basis is the unit vectors themselves.
		for i := 0; i < dim; i++ {
			v := make([]integer.Int, dim)
			v[i] = integer.One()
			action(v)
		}
		if o.Tracker != nil {
			o.Tracker.SetPercent(100)
		}
		return nil
	}

	order := orderHyperplanes(subspace, o.InitialRows)

	// The working basis starts as the extremal rays of the orthant.
	list := make([]*vecSpec[M], 0, dim)
	for i := 0; i < dim; i++ {
		list = append(list, newUnitVec(i, dim, zero))
	}

	for i, row := range order {
		list = intersectHyperplane(list, subspace, row, masks)
		if o.Tracker != nil &&
			!o.Tracker.SetPercent(100*float64(i)/float64(nEqns)) {
			return ErrCancelled
		}
	}

	for _, v := range list {
		out := make([]integer.Int, dim)
		copy(out, v.coords)
		action(out)
	}
	if o.Tracker != nil {
		o.Tracker.SetPercent(100)
	}
	return nil
}

// signAdmits reports whether w may reduce v on the given side of the
// hyperplane: the difference v-w must stay on that side (or on the
// hyperplane), which keeps reduction closed within each list.
func signAdmits[M bitmask.Mask[M]](w, v *vecSpec[M], listSign int) bool {
	switch {
	case listSign > 0:
		return w.nextHyp.Cmp(v.nextHyp) <= 0
	case listSign < 0:
		return v.nextHyp.Cmp(w.nextHyp) <= 0
	default:
		return v.nextHyp.Equal(w.nextHyp)
	}
}

// reduces reports whether vec is dominated by any vector in against,
// under the listSign-directed dot-product test.
func reduces[M bitmask.Mask[M]](vec *vecSpec[M], against []*vecSpec[M], listSign int) bool {
	for _, w := range against {
		if w.leq(vec) && signAdmits(w, vec, listSign) {
			return true
		}
	}
	return false
}

// reduceBasis removes from *reduce every vector that reduces against
// some other vector of *against. The two arguments may point at the
// same slice; a vector never reduces against itself, and a vector
// already removed no longer reduces others.
func reduceBasis[M bitmask.Mask[M]](reduce, against *[]*vecSpec[M], listSign int) {
	i := 0
	for i < len(*reduce) {
		v := (*reduce)[i]
		removed := false
		for wi, w := range *against {
			if w == v {
				continue
			}
			if w.leq(v) && signAdmits(w, v, listSign) {
				*reduce = append((*reduce)[:i], (*reduce)[i+1:]...)
				removed = true
				if darwinReorder {
					// Keep the successful reducer near the front, then
					// rescan: the rotation may shuffle the examined
					// prefix when both arguments alias the same list.
					promoteReducer(against, wi)
					i = 0
				}
				break
			}
		}
		if !removed {
			i++
		}
	}
}

// promoteReducer moves a successful reducer to the front of the list so
// it is tried earlier next time. Compiled in only with the
// hilbertreorder build tag.
func promoteReducer[M bitmask.Mask[M]](against *[]*vecSpec[M], wi int) {
	if wi <= 0 || wi >= len(*against) {
		return
	}
	w := (*against)[wi]
	copy((*against)[1:wi+1], (*against)[:wi])
	(*against)[0] = w
}

// intersectHyperplane converts the Hilbert basis of the current cone
// into the basis of the same cone intersected with one more hyperplane
// (the given row of subspace).
func intersectHyperplane[M bitmask.Mask[M]](list []*vecSpec[M],
	subspace *matrix.Dense, row int, masks []M) []*vecSpec[M] {

	// Decant the basis into zero/positive/negative sides.
	var zeroSide, pos, neg []*vecSpec[M]
	for _, v := range list {
		v.initNextHyp(subspace, row)
		switch s := v.sign(); {
		case s == 0:
			zeroSide = append(zeroSide, v)
		case s > 0:
			pos = append(pos, v)
		default:
			neg = append(neg, v)
		}
	}

	// Boundaries of the previous generation: a (pos, neg) pair is only
	// summed when at least one of the two is fresh in the current round.
	posPrevGen := 0
	negPrevGen := 0

	for {
		var newZero, newPos, newNeg []*vecSpec[M]

		for pi, p := range pos {
			fresh := pi >= posPrevGen
			start := negPrevGen
			if fresh {
				start = 0
			}
			for ni := start; ni < len(neg); ni++ {
				n := neg[ni]

				// Constraint pre-pruning: invalidity survives addition,
				// so an invalid support can never recover.
				if len(masks) > 0 {
					comb := p.mask.Union(n.mask)
					broken := false
					for _, constraint := range masks {
						if !comb.Intersect(constraint).AtMostOneBit() {
							broken = true
							break
						}
					}
					if broken {
						continue
					}
				}

				sum := formSum(p, n)
				switch s := sum.sign(); {
				case s == 0:
					if !reduces(sum, zeroSide, 0) {
						newZero = append(newZero, sum)
					}
				case s > 0:
					// A decomposition of a positive vector into basis
					// members must use at least one positive member, so
					// testing against pos alone suffices.
					if !reduces(sum, pos, 1) {
						newPos = append(newPos, sum)
					}
				default:
					if !reduces(sum, neg, -1) {
						newNeg = append(newNeg, sum)
					}
				}
			}
		}

		if len(newZero) == 0 && len(newPos) == 0 && len(newNeg) == 0 {
			break
		}

		// Independently reduce each side, newcomers first.
		reduceBasis(&newZero, &newZero, 0)
		reduceBasis(&zeroSide, &newZero, 0)

		reduceBasis(&newPos, &newPos, 1)
		reduceBasis(&pos, &newPos, 1)

		reduceBasis(&newNeg, &newNeg, -1)
		reduceBasis(&neg, &newNeg, -1)

		// Splice survivors in and advance the generation boundaries.
		zeroSide = append(zeroSide, newZero...)
		posPrevGen = len(pos)
		pos = append(pos, newPos...)
		negPrevGen = len(neg)
		neg = append(neg, newNeg...)
	}

	// The surviving zero side is the new basis; pos and neg are gone.
	return zeroSide
}
