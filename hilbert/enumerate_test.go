package hilbert_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowtopo/hilbert"
	"github.com/katalvlaran/lowtopo/integer"
	"github.com/katalvlaran/lowtopo/matrix"
	"github.com/katalvlaran/lowtopo/progress"
)

// collect runs Enumerate and gathers the emitted vectors as int64 rows.
func collect(t *testing.T, subspace *matrix.Dense,
	constraints *hilbert.ValidityConstraints, opts ...hilbert.Option) [][]int64 {
	t.Helper()
	var out [][]int64
	err := hilbert.Enumerate(func(v []integer.Int) {
		row := make([]int64, len(v))
		for i, x := range v {
			n, ok := x.Int64()
			require.True(t, ok)
			row[i] = n
		}
		out = append(out, row)
	}, subspace, constraints, opts...)
	require.NoError(t, err)
	return out
}

// sortRows puts rows into a canonical order for comparison.
func sortRows(rows [][]int64) {
	sort.Slice(rows, func(i, j int) bool {
		return fmt.Sprint(rows[i]) < fmt.Sprint(rows[j])
	})
}

// TestNoHyperplanes returns the unit vectors of the orthant.
func TestNoHyperplanes(t *testing.T) {
	s, _ := matrix.NewDense(0, 3)
	got := collect(t, s, hilbert.None())
	sortRows(got)
	require.Equal(t, [][]int64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, got)
}

// TestSumZeroIsEmpty: x+y+z = 0 meets the orthant only at the origin,
// so the basis is empty.
func TestSumZeroIsEmpty(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{1, 1, 1}})
	got := collect(t, s, hilbert.None())
	require.Empty(t, got)
}

// TestDiagonalSubspace: y = z yields {(1,0,0), (0,1,1)}.
func TestDiagonalSubspace(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{0, 1, -1}})
	got := collect(t, s, hilbert.None())
	sortRows(got)
	require.Equal(t, [][]int64{{0, 1, 1}, {1, 0, 0}}, got)
}

// TestScaledRay: x = 2y needs the single generator (2,1).
func TestScaledRay(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{1, -2}})
	got := collect(t, s, hilbert.None())
	require.Equal(t, [][]int64{{2, 1}}, got)
}

// TestTwoGenerators: z = x + y gives {(1,0,1), (0,1,1)}.
func TestTwoGenerators(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{1, 1, -1}})
	got := collect(t, s, hilbert.None())
	sortRows(got)
	require.Equal(t, [][]int64{{0, 1, 1}, {1, 0, 1}}, got)
}

// TestFourGenerators is the classic x1+x2 = x3+x4 cone with four
// extreme generators and no interior ones.
func TestFourGenerators(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{1, 1, -1, -1}})
	got := collect(t, s, hilbert.None())
	sortRows(got)
	require.Equal(t, [][]int64{
		{0, 1, 0, 1}, {0, 1, 1, 0}, {1, 0, 0, 1}, {1, 0, 1, 0},
	}, got)
}

// TestMinimality is P4 on a two-hyperplane system: every output
// satisfies the system and no output is a sum of two others.
func TestMinimality(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{
		{1, 1, -1, -1, 0},
		{0, 1, 0, -1, -1},
	})
	got := collect(t, s, hilbert.None())
	require.NotEmpty(t, got)

	// Each vector is a non-negative solution of S·v = 0.
	for _, v := range got {
		for _, x := range v {
			require.GreaterOrEqual(t, x, int64(0))
		}
		require.Equal(t, int64(0), v[0]+v[1]-v[2]-v[3])
		require.Equal(t, int64(0), v[1]-v[3]-v[4])
	}

	// Irredundance: no basis vector is a sum of two basis vectors.
	key := func(v []int64) string { return fmt.Sprint(v) }
	set := map[string]bool{}
	for _, v := range got {
		require.False(t, set[key(v)], "duplicate vector %v", v)
		set[key(v)] = true
	}
	dim := len(got[0])
	for _, a := range got {
		for _, b := range got {
			sum := make([]int64, dim)
			for i := range sum {
				sum[i] = a[i] + b[i]
			}
			require.False(t, set[key(sum)],
				"basis vector %v is the sum %v + %v", sum, a, b)
		}
	}
}

// TestConstraints forbids y and z together, killing (0,1,1).
func TestConstraints(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{0, 1, -1}})
	c, err := hilbert.NewConstraints([]int{1, 2})
	require.NoError(t, err)
	got := collect(t, s, c)
	require.Equal(t, [][]int64{{1, 0, 0}}, got)
}

// TestConstraintValidation rejects out-of-range coordinates.
func TestConstraintValidation(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{0, 1, -1}})
	c, err := hilbert.NewConstraints([]int{1, 7})
	require.NoError(t, err)
	err = hilbert.Enumerate(func([]integer.Int) {}, s, c)
	require.ErrorIs(t, err, hilbert.ErrBadConstraint)

	_, err = hilbert.NewConstraints([]int{-1})
	require.ErrorIs(t, err, hilbert.ErrBadConstraint)
}

// TestOptionValidation surfaces bad options.
func TestOptionValidation(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{0, 1, -1}})
	err := hilbert.Enumerate(func([]integer.Int) {}, s, hilbert.None(),
		hilbert.WithInitialRows(-1))
	require.ErrorIs(t, err, hilbert.ErrOptionViolation)

	err = hilbert.Enumerate(nil, s, hilbert.None())
	require.ErrorIs(t, err, hilbert.ErrNilInput)
}

// TestInitialRowsPinOrder: pinning all rows must not change the result,
// only the processing order.
func TestInitialRowsPinOrder(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{
		{1, 1, -1, -1},
		{1, -1, 0, 0},
	})
	free := collect(t, s, hilbert.None())
	pinned := collect(t, s, hilbert.None(), hilbert.WithInitialRows(2))
	sortRows(free)
	sortRows(pinned)
	require.Equal(t, free, pinned)
}

// TestCancellation: a cancelled tracker aborts with ErrCancelled and
// emits nothing.
func TestCancellation(t *testing.T) {
	s, _ := matrix.FromRows([][]int64{{0, 1, -1}})
	var tr progress.Open
	tr.Cancel()

	called := false
	err := hilbert.Enumerate(func([]integer.Int) { called = true },
		s, hilbert.None(), hilbert.WithTracker(&tr))
	require.ErrorIs(t, err, hilbert.ErrCancelled)
	require.False(t, called)
}

// TestWideDispatch exercises the two-word bitmask flavour (dim > 64).
func TestWideDispatch(t *testing.T) {
	const dim = 70
	rows := make([][]int64, 1)
	rows[0] = make([]int64, dim)
	rows[0][0] = 1
	rows[0][1] = -1
	s, err := matrix.FromRows(rows)
	require.NoError(t, err)

	got := collect(t, s, hilbert.None())
	// The basis: (1,1,0,...,0) plus every unit vector e2..e69.
	require.Len(t, got, dim-1)
	paired := 0
	for _, v := range got {
		if v[0] == 1 && v[1] == 1 {
			paired++
		}
	}
	require.Equal(t, 1, paired)
}

// TestHugeDispatch exercises the slice-backed flavour (dim > 128).
func TestHugeDispatch(t *testing.T) {
	const dim = 130
	rows := make([][]int64, 1)
	rows[0] = make([]int64, dim)
	rows[0][dim-1] = 2
	rows[0][dim-2] = -2
	s, err := matrix.FromRows(rows)
	require.NoError(t, err)

	got := collect(t, s, hilbert.None())
	require.Len(t, got, dim-1)
}

// TestZeroDimension emits nothing for an empty ambient space.
func TestZeroDimension(t *testing.T) {
	s, _ := matrix.NewDense(1, 0)
	got := collect(t, s, hilbert.None())
	require.Empty(t, got)
}
