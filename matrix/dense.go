// Dense is a concrete, row-major matrix of exact integers, storing its
// elements in a flat slice for cache friendliness. Dimensions are fixed
// from construction to destruction.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lowtopo/integer"
)

// Dense is a row-major r×c matrix of integer.Int values.
type Dense struct {
	r, c int           // number of rows and columns
	data []integer.Int // flat backing storage, length == r*c
}

// NewDense creates an r×c matrix initialized to zeros.
// Zero-row and zero-column matrices are legal.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Dense{r: rows, c: cols, data: make([]integer.Int, rows*cols)}, nil
}

// NewIdentity creates the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	m.MakeIdentity()
	return m, nil
}

// FromRows builds a matrix from int64 row literals. All rows must have the
// same length. Intended for construction sites and tests.
func FromRows(rows [][]int64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d",
				ErrBadShape, i, len(row), c)
		}
		for j, v := range row {
			m.data[i*c+j] = integer.FromInt64(v)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (row, col), or ErrOutOfRange.
func (m *Dense) At(row, col int) (integer.Int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return integer.Int{}, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v integer.Int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v
	return nil
}

// entry is the unchecked accessor used by the in-package algorithms.
// Bounds are guaranteed by the algorithm invariants.
func (m *Dense) entry(row, col int) integer.Int {
	return m.data[row*m.c+col]
}

// setEntry is the unchecked mutator counterpart of entry.
func (m *Dense) setEntry(row, col int, v integer.Int) {
	m.data[row*m.c+col] = v
}

// SwapRows exchanges rows i and j in place.
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("Dense.SwapRows(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}
	return nil
}

// SwapCols exchanges columns i and j in place.
func (m *Dense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return fmt.Errorf("Dense.SwapCols(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.r; k++ {
		m.data[k*m.c+i], m.data[k*m.c+j] = m.data[k*m.c+j], m.data[k*m.c+i]
	}
	return nil
}

// MakeIdentity zeroes the matrix and writes ones down the main diagonal
// (the first min(r,c) entries for a non-square matrix).
func (m *Dense) MakeIdentity() {
	for k := range m.data {
		m.data[k] = integer.Int{}
	}
	n := m.r
	if m.c < n {
		n = m.c
	}
	one := integer.One()
	for i := 0; i < n; i++ {
		m.data[i*m.c+i] = one
	}
}

// Mul returns the product m · other, or ErrDimensionMismatch.
// Complexity: O(r·c·other.c) big-integer multiplications.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if other == nil {
		return nil, ErrNilMatrix
	}
	if m.c != other.r {
		return nil, fmt.Errorf("Dense.Mul: %dx%d by %dx%d: %w",
			m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}
	out, _ := NewDense(m.r, other.c)
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			a := m.entry(i, k)
			if a.IsZero() {
				continue
			}
			for j := 0; j < other.c; j++ {
				b := other.entry(k, j)
				if b.IsZero() {
					continue
				}
				out.setEntry(i, j, out.entry(i, j).Add(a.Mul(b)))
			}
		}
	}
	return out, nil
}

// MulVec returns the product m · v for a column vector v of length Cols().
func (m *Dense) MulVec(v []integer.Int) ([]integer.Int, error) {
	if len(v) != m.c {
		return nil, fmt.Errorf("Dense.MulVec: vector length %d, want %d: %w",
			len(v), m.c, ErrDimensionMismatch)
	}
	out := make([]integer.Int, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			e := m.entry(i, j)
			if e.IsZero() || v[j].IsZero() {
				continue
			}
			out[i] = out[i].Add(e.Mul(v[j]))
		}
	}
	return out, nil
}

// Col returns a fresh copy of column j.
func (m *Dense) Col(j int) ([]integer.Int, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.Col(%d): %w", j, ErrOutOfRange)
	}
	out := make([]integer.Int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.entry(i, j)
	}
	return out, nil
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]integer.Int, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Transpose returns a fresh transposed copy.
func (m *Dense) Transpose() *Dense {
	out, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.setEntry(j, i, m.entry(i, j))
		}
	}
	return out
}

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// IsIdentity reports whether the matrix is square with ones on the
// diagonal and zeros elsewhere.
func (m *Dense) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.entry(i, j)
			if i == j {
				if !v.IsOne() {
					return false
				}
			} else if !v.IsZero() {
				return false
			}
		}
	}
	return true
}

// Equal reports whether the two matrices have the same shape and entries.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(other.data[k]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.entry(i, j).String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
