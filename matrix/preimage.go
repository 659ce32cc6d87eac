// Pre-image of a lattice under an integer homomorphism.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lowtopo/integer"
)

// PreimageOfLattice computes a basis for the kernel of the composite map
//
//	Z^n --hom--> Z^k --quotient--> Z^free ⊕ ⨁ Z/dᵢ,
//
// where hom is k×n and orders has one entry per codomain coordinate:
// zero marks a free factor and dᵢ > 0 marks a torsion factor of order dᵢ.
// The kernel contains the integer kernel of hom and is a finite-index
// sublattice of the kernel of the free rows alone; the returned matrix
// has n rows and one column per basis vector.
//
// The algorithm runs in two passes of column echelon reduction: first on
// the free rows (the columns surviving with zero free image span the
// pre-image of the torsion subspace), then on the torsion rows, scaling
// each leading column by the smallest positive multiplier that lands it
// in the lattice and clearing the remaining entries of each torsion row
// with gcd-based column operations.
func PreimageOfLattice(hom *Dense, orders []integer.Int) (*Dense, error) {
	if hom == nil {
		return nil, ErrNilMatrix
	}
	if len(orders) != hom.r {
		return nil, fmt.Errorf("PreimageOfLattice: %d orders for %d rows: %w",
			len(orders), hom.r, ErrDimensionMismatch)
	}
	for i, d := range orders {
		if d.Sign() < 0 {
			return nil, fmt.Errorf("PreimageOfLattice: negative order at %d: %w",
				i, ErrBadShape)
		}
	}

	n := hom.c
	basis, _ := NewIdentity(n)
	basisInv, _ := NewIdentity(n)
	work := hom.Clone()

	// Split the codomain coordinates into free and torsion rows.
	var freeRows, torRows []int
	for i, d := range orders {
		if d.IsZero() {
			freeRows = append(freeRows, i)
		} else {
			torRows = append(torRows, i)
		}
	}

	// Pass 1: echelonize the free image. Columns whose free image became
	// zero are exactly those mapping into the primitive subspace spanned
	// by the torsion lattice.
	if err := ColumnEchelonForm(work, basis, basisInv, freeRows); err != nil {
		return nil, err
	}

	var torCols []int
	for j := 0; j < work.c; j++ {
		zero := true
		for _, row := range freeRows {
			if !work.entry(row, j).IsZero() {
				zero = false
				break
			}
		}
		if zero {
			torCols = append(torCols, j)
		}
	}

	// Restrict to the torsion-bound columns.
	tHom, _ := NewDense(work.r, len(torCols))
	tBasis, _ := NewDense(basis.r, len(torCols))
	for i := 0; i < work.r; i++ {
		for j, col := range torCols {
			tHom.setEntry(i, j, work.entry(i, col))
		}
	}
	for i := 0; i < basis.r; i++ {
		for j, col := range torCols {
			tBasis.setEntry(i, j, basis.entry(i, col))
		}
	}

	// Pass 2, part one: echelonize the torsion rows. The inverse is not
	// needed here, so a zero-column dummy keeps the bookkeeping cheap.
	dummy, _ := NewDense(len(torCols), 0)
	if err := ColumnEchelonForm(tHom, tBasis, dummy, torRows); err != nil {
		return nil, err
	}

	// Pass 2, part two: walk the torsion rows. Each row is reduced to at
	// most one non-zero entry; that column is then scaled by the smallest
	// positive multiplier putting the entry into dᵢ·Z.
	cr := 0
	var nz []int
	for cr < len(torRows) {
		row := torRows[cr]

		nz = nz[:0]
		for j := 0; j < tHom.c; j++ {
			if !tHom.entry(row, j).IsZero() {
				nz = append(nz, j)
			}
		}

		switch {
		case len(nz) == 0:
			cr++

		case len(nz) == 1:
			// Scale column nz[0] so the entry becomes divisible by the
			// torsion order; d = order / gcd(entry, order) is the
			// smallest such multiplier.
			g := tHom.entry(row, nz[0]).Gcd(orders[row])
			d := orders[row].DivExact(g)
			if !d.IsOne() {
				for _, tr := range torRows {
					tHom.setEntry(tr, nz[0], tHom.entry(tr, nz[0]).Mul(d))
				}
				for i := 0; i < tBasis.r; i++ {
					tBasis.setEntry(i, nz[0], tBasis.entry(i, nz[0]).Mul(d))
				}
			}
			cr++

		default:
			// Merge non-zero entries pairwise, exactly as in the echelon
			// reduction, until a single entry remains.
			for len(nz) > 1 {
				g, u, v := tHom.entry(row, nz[0]).GcdWithCoeffs(tHom.entry(row, nz[1]))
				a := tHom.entry(row, nz[0]).DivExact(g)
				b := tHom.entry(row, nz[1]).DivExact(g)
				for _, tr := range torRows {
					tmp := u.Mul(tHom.entry(tr, nz[0])).Add(v.Mul(tHom.entry(tr, nz[1])))
					tHom.setEntry(tr, nz[1],
						a.Mul(tHom.entry(tr, nz[1])).Sub(b.Mul(tHom.entry(tr, nz[0]))))
					tHom.setEntry(tr, nz[0], tmp)
				}
				for i := 0; i < tBasis.r; i++ {
					tmp := u.Mul(tBasis.entry(i, nz[0])).Add(v.Mul(tBasis.entry(i, nz[1])))
					tBasis.setEntry(i, nz[1],
						a.Mul(tBasis.entry(i, nz[1])).Sub(b.Mul(tBasis.entry(i, nz[0]))))
					tBasis.setEntry(i, nz[0], tmp)
				}
				nz = append(nz[:1], nz[2:]...)
			}
		}
	}

	return tBasis, nil
}
