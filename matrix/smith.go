// Smith Normal Form with tracked basis changes.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lowtopo/integer"
)

// SmithNormalForm reduces x in place to its Smith Normal Form while
// composing the unimodular basis changes into r, ri, c, ci.
//
// On entry, r and ri must be Cols(x)×Cols(x) and c and ci must be
// Rows(x)×Rows(x); normally all four are identities, but any existing
// coordinate change is composed into rather than overwritten. On return,
//
//	c · x_in · r == x_out,   r·ri == ri·r == I,   c·ci == ci·c == I,
//
// and x_out is diagonal with non-negative entries d1 | d2 | … | dm
// followed by zeros.
//
// Steps per stage k (active window [k..rows)×[k..cols)):
//  1. An all-zero row k is swapped to the bottom and the window shrinks.
//  2. An all-zero column k is swapped to the right and the window shrinks.
//  3. Row k is cleared right of (k,k) via gcd-based unimodular column ops.
//  4. Column k is cleared below (k,k) via the row-symmetric procedure; if
//     this perturbed row k, the stage restarts.
//  5. If some remaining entry is not divisible by the pivot, its row is
//     added into row k and the stage restarts, so the final diagonal is
//     in divisor order.
//  6. The pivot's sign is normalized and the stage advances.
//
// Complexity: worst case superpolynomial in entry size; in practice the
// gcd-driven pivoting keeps entries small.
func SmithNormalForm(x, r, ri, c, ci *Dense) error {
	if x == nil || r == nil || ri == nil || c == nil || ci == nil {
		return ErrNilMatrix
	}
	if r.r != x.c || r.c != x.c || ri.r != x.c || ri.c != x.c {
		return fmt.Errorf("SmithNormalForm: row-basis matrices must be %dx%d: %w",
			x.c, x.c, ErrDimensionMismatch)
	}
	if c.r != x.r || c.c != x.r || ci.r != x.r || ci.c != x.r {
		return fmt.Errorf("SmithNormalForm: column-basis matrices must be %dx%d: %w",
			x.r, x.r, ErrDimensionMismatch)
	}

	nr := x.r // rows of the active region
	nc := x.c // columns of the active region
	stage := 0

stageLoop:
	for stage < nr && stage < nc {
		// Step 1: is row `stage` empty within the active window?
		empty := true
		for i := stage; i < nc; i++ {
			if !x.entry(stage, i).IsZero() {
				empty = false
				break
			}
		}
		if empty {
			if stage == nr-1 {
				nr--
				continue
			}
			// Swap it with the bottom active row; mirror in c and ci.
			for i := stage; i < nc; i++ {
				vs, vb := x.entry(stage, i), x.entry(nr-1, i)
				x.setEntry(stage, i, vb)
				x.setEntry(nr-1, i, vs)
			}
			for i := 0; i < x.r; i++ {
				vs, vb := c.entry(stage, i), c.entry(nr-1, i)
				c.setEntry(stage, i, vb)
				c.setEntry(nr-1, i, vs)
				vs, vb = ci.entry(i, stage), ci.entry(i, nr-1)
				ci.setEntry(i, stage, vb)
				ci.setEntry(i, nr-1, vs)
			}
			nr--
			continue
		}

		// Step 2: is column `stage` empty within the active window?
		empty = true
		for i := stage; i < nr; i++ {
			if !x.entry(i, stage).IsZero() {
				empty = false
				break
			}
		}
		if empty {
			if stage == nc-1 {
				nc--
				continue
			}
			for i := stage; i < nr; i++ {
				vs, vb := x.entry(i, stage), x.entry(i, nc-1)
				x.setEntry(i, stage, vb)
				x.setEntry(i, nc-1, vs)
			}
			for i := 0; i < x.c; i++ {
				vs, vb := r.entry(i, stage), r.entry(i, nc-1)
				r.setEntry(i, stage, vb)
				r.setEntry(i, nc-1, vs)
				vs, vb = ri.entry(stage, i), ri.entry(nc-1, i)
				ri.setEntry(stage, i, vb)
				ri.setEntry(nc-1, i, vs)
			}
			nc--
			continue
		}

		// Step 3: clear row `stage` to the right of the pivot.
		for i := stage + 1; i < nc; i++ {
			if x.entry(stage, i).IsZero() {
				continue
			}
			a := x.entry(stage, stage)
			b := x.entry(stage, i)
			d, u, v := a.GcdWithCoeffs(b)
			a = a.DivExact(d)
			b = b.DivExact(d)
			// Column op [col stage, col i] <- [u·cs + v·ci, a·ci − b·cs]
			// applied to x over the active rows, and to r in full; ri
			// receives the inverse as a row op.
			for j := stage; j < nr; j++ {
				tmp := u.Mul(x.entry(j, stage)).Add(v.Mul(x.entry(j, i)))
				x.setEntry(j, i, a.Mul(x.entry(j, i)).Sub(b.Mul(x.entry(j, stage))))
				x.setEntry(j, stage, tmp)
			}
			for j := 0; j < x.c; j++ {
				tmp := u.Mul(r.entry(j, stage)).Add(v.Mul(r.entry(j, i)))
				r.setEntry(j, i, a.Mul(r.entry(j, i)).Sub(b.Mul(r.entry(j, stage))))
				r.setEntry(j, stage, tmp)

				tmp = a.Mul(ri.entry(stage, j)).Add(b.Mul(ri.entry(i, j)))
				ri.setEntry(i, j, u.Mul(ri.entry(i, j)).Sub(v.Mul(ri.entry(stage, j))))
				ri.setEntry(stage, j, tmp)
			}
		}

		// Step 4: clear column `stage` below the pivot, remembering
		// whether the clean row was perturbed.
		perturbed := false
		for i := stage + 1; i < nr; i++ {
			if x.entry(i, stage).IsZero() {
				continue
			}
			perturbed = true
			a := x.entry(stage, stage)
			b := x.entry(i, stage)
			d, u, v := a.GcdWithCoeffs(b)
			a = a.DivExact(d)
			b = b.DivExact(d)
			for j := stage; j < nc; j++ {
				tmp := u.Mul(x.entry(stage, j)).Add(v.Mul(x.entry(i, j)))
				x.setEntry(i, j, a.Mul(x.entry(i, j)).Sub(b.Mul(x.entry(stage, j))))
				x.setEntry(stage, j, tmp)
			}
			for j := 0; j < x.r; j++ {
				tmp := u.Mul(c.entry(stage, j)).Add(v.Mul(c.entry(i, j)))
				c.setEntry(i, j, a.Mul(c.entry(i, j)).Sub(b.Mul(c.entry(stage, j))))
				c.setEntry(stage, j, tmp)

				tmp = a.Mul(ci.entry(j, stage)).Add(b.Mul(ci.entry(j, i)))
				ci.setEntry(j, i, u.Mul(ci.entry(j, i)).Sub(v.Mul(ci.entry(j, stage))))
				ci.setEntry(j, stage, tmp)
			}
		}
		if perturbed {
			// The clean row was mucked up; redo the stage.
			continue
		}

		// Step 5: the pivot must divide everything in the remaining window.
		pivot := x.entry(stage, stage)
		for i := stage + 1; i < nr; i++ {
			for j := stage + 1; j < nc; j++ {
				if x.entry(i, j).DivisibleBy(pivot) {
					continue
				}
				// Add row i into row stage and start the stage over.
				for k := stage + 1; k < nc; k++ {
					x.setEntry(stage, k, x.entry(stage, k).Add(x.entry(i, k)))
				}
				for k := 0; k < x.r; k++ {
					c.setEntry(stage, k, c.entry(stage, k).Add(c.entry(i, k)))
					ci.setEntry(k, i, ci.entry(k, i).Sub(ci.entry(k, stage)))
				}
				continue stageLoop
			}
		}

		// Step 6: normalize the pivot's sign; the rest of its row and
		// column in the window is already zero.
		if pivot.Sign() < 0 {
			x.setEntry(stage, stage, pivot.Neg())
			for j := 0; j < x.r; j++ {
				c.setEntry(stage, j, c.entry(stage, j).Neg())
				ci.setEntry(j, stage, ci.entry(j, stage).Neg())
			}
		}
		stage++
	}
	return nil
}

// Rank returns the rank of m, computed through a throwaway Smith Normal
// Form of a copy.
func Rank(m *Dense) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	t := m.Clone()
	r, _ := NewIdentity(t.c)
	ri, _ := NewIdentity(t.c)
	c, _ := NewIdentity(t.r)
	ci, _ := NewIdentity(t.r)
	if err := SmithNormalForm(t, r, ri, c, ci); err != nil {
		return 0, err
	}
	rank := 0
	for rank < t.r && rank < t.c && !t.entry(rank, rank).IsZero() {
		rank++
	}
	return rank, nil
}

// diagonal returns the entries d0..d(min(r,c)-1) of the main diagonal.
func (m *Dense) diagonal() []integer.Int {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]integer.Int, n)
	for i := 0; i < n; i++ {
		out[i] = m.entry(i, i)
	}
	return out
}

// Diagonal returns a fresh copy of the main diagonal. For a matrix in
// Smith Normal Form this is the invariant-factor sequence padded with
// zeros.
func (m *Dense) Diagonal() []integer.Int { return m.diagonal() }
