// Reduced column echelon form with respect to a designated row list.

package matrix

import "fmt"

// ColumnEchelonForm reduces m in place, via column operations only, to
// reduced column echelon form with respect to the designated rows in
// rowList (in order). The convention:
//
//	A) each non-zero column has a positive first non-zero designated entry;
//	B) from left to right those leading entries appear in strictly
//	   increasing rowList position;
//	C) in a leading row, every entry left of the pivot is non-negative and
//	   strictly smaller than the pivot;
//	D) a designated row without a pivot is zero in every column to the
//	   right of the pivot columns that precede it;
//	E) all zero columns sit on the right.
//
// r accumulates the right multiplication (m_in · r == m_out) and ri its
// inverse (m_out · ri == m_in). Both must have Cols(m) columns and
// Cols(m) rows respectively; they are composed into, not reset, so a
// caller may pass a non-trivial coordinate change. ri may have zero
// columns when the inverse is not needed.
//
// Rows of m outside rowList are carried along by the column operations
// but impose no constraints.
func ColumnEchelonForm(m, r, ri *Dense, rowList []int) error {
	if m == nil || r == nil || ri == nil {
		return ErrNilMatrix
	}
	if r.c != m.c {
		return fmt.Errorf("ColumnEchelonForm: r must have %d columns: %w",
			m.c, ErrDimensionMismatch)
	}
	if ri.r != m.c {
		return fmt.Errorf("ColumnEchelonForm: ri must have %d rows: %w",
			m.c, ErrDimensionMismatch)
	}
	for _, row := range rowList {
		if row < 0 || row >= m.r {
			return fmt.Errorf("ColumnEchelonForm: designated row %d: %w",
				row, ErrOutOfRange)
		}
	}

	cr := 0 // current position within rowList
	cc := 0 // current working column
	var nz []int

	for cr < len(rowList) && cc < m.c {
		row := rowList[cr]

		// Collect the non-zero entries of the working row at or right of cc.
		nz = nz[:0]
		for i := cc; i < m.c; i++ {
			if !m.entry(row, i).IsZero() {
				nz = append(nz, i)
			}
		}

		switch {
		case len(nz) == 0:
			// Nothing to do in this designated row.
			cr++

		case len(nz) == 1 && nz[0] == cc:
			// The single entry already leads; make it positive, then
			// reduce everything to its left in this row.
			if m.entry(row, cc).Sign() < 0 {
				negateColumn(m, cc)
				negateColumn(r, cc)
				negateRow(ri, cc)
			}
			pivot := m.entry(row, cc)
			for i := 0; i < cc; i++ {
				// Write entry(row,i) as d*pivot + rem with 0 <= rem < pivot,
				// then subtract d times column cc from column i.
				d, _ := m.entry(row, i).DivisionAlg(pivot)
				if d.IsZero() {
					continue
				}
				for j := 0; j < m.r; j++ {
					m.setEntry(j, i, m.entry(j, i).Sub(d.Mul(m.entry(j, cc))))
				}
				for j := 0; j < r.r; j++ {
					r.setEntry(j, i, r.entry(j, i).Sub(d.Mul(r.entry(j, cc))))
				}
				// The inverse row op adds d times row i to row cc.
				for j := 0; j < ri.c; j++ {
					ri.setEntry(cc, j, ri.entry(cc, j).Add(d.Mul(ri.entry(i, j))))
				}
			}
			cc++
			cr++

		case len(nz) == 1:
			// Move the lone entry into the leading position.
			swapColumns(m, cc, nz[0])
			swapColumns(r, cc, nz[0])
			swapRowsOf(ri, cc, nz[0])

		default:
			// At least two non-zero entries: merge them pairwise with
			// gcd-based unimodular column operations until one remains.
			for len(nz) > 1 {
				g, u, v := m.entry(row, nz[0]).GcdWithCoeffs(m.entry(row, nz[1]))
				a := m.entry(row, nz[0]).DivExact(g)
				b := m.entry(row, nz[1]).DivExact(g)
				// [col nz0, col nz1] <- [u·c0 + v·c1, a·c1 − b·c0]
				for i := 0; i < m.r; i++ {
					tmp := u.Mul(m.entry(i, nz[0])).Add(v.Mul(m.entry(i, nz[1])))
					m.setEntry(i, nz[1], a.Mul(m.entry(i, nz[1])).Sub(b.Mul(m.entry(i, nz[0]))))
					m.setEntry(i, nz[0], tmp)
				}
				for i := 0; i < r.r; i++ {
					tmp := u.Mul(r.entry(i, nz[0])).Add(v.Mul(r.entry(i, nz[1])))
					r.setEntry(i, nz[1], a.Mul(r.entry(i, nz[1])).Sub(b.Mul(r.entry(i, nz[0]))))
					r.setEntry(i, nz[0], tmp)
				}
				for i := 0; i < ri.c; i++ {
					tmp := a.Mul(ri.entry(nz[0], i)).Add(b.Mul(ri.entry(nz[1], i)))
					ri.setEntry(nz[1], i, u.Mul(ri.entry(nz[1], i)).Sub(v.Mul(ri.entry(nz[0], i))))
					ri.setEntry(nz[0], i, tmp)
				}
				nz = append(nz[:1], nz[2:]...)
			}
		}
	}
	return nil
}

// negateColumn negates column j of m in place.
func negateColumn(m *Dense, j int) {
	for i := 0; i < m.r; i++ {
		m.setEntry(i, j, m.entry(i, j).Neg())
	}
}

// negateRow negates row i of m in place.
func negateRow(m *Dense, i int) {
	for j := 0; j < m.c; j++ {
		m.setEntry(i, j, m.entry(i, j).Neg())
	}
}

// swapColumns exchanges two columns without bounds checking.
func swapColumns(m *Dense, a, b int) {
	for i := 0; i < m.r; i++ {
		va, vb := m.entry(i, a), m.entry(i, b)
		m.setEntry(i, a, vb)
		m.setEntry(i, b, va)
	}
}

// swapRowsOf exchanges two rows without bounds checking.
func swapRowsOf(m *Dense, a, b int) {
	for j := 0; j < m.c; j++ {
		va, vb := m.entry(a, j), m.entry(b, j)
		m.setEntry(a, j, vb)
		m.setEntry(b, j, va)
	}
}
