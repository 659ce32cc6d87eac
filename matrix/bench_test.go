package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lowtopo/matrix"
)

// benchFixture is a dense 6×6 matrix with mixed magnitudes, enough to
// make the gcd pivoting work for its keep.
func benchFixture(b *testing.B) *matrix.Dense {
	b.Helper()
	m, err := matrix.FromRows([][]int64{
		{12, 8, 6, -4, 0, 2},
		{8, 12, 10, 6, -2, 0},
		{6, 10, 12, 8, 4, -6},
		{-4, 6, 8, 12, 10, 4},
		{0, -2, 4, 10, 12, 8},
		{2, 0, -6, 4, 8, 12},
	})
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkSmithNormalForm measures a full SNF with basis tracking.
func BenchmarkSmithNormalForm(b *testing.B) {
	src := benchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := src.Clone()
		r, _ := matrix.NewIdentity(x.Cols())
		ri, _ := matrix.NewIdentity(x.Cols())
		c, _ := matrix.NewIdentity(x.Rows())
		ci, _ := matrix.NewIdentity(x.Rows())
		if err := matrix.SmithNormalForm(x, r, ri, c, ci); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRank measures the throwaway-SNF rank computation.
func BenchmarkRank(b *testing.B) {
	src := benchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Rank(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMul measures the dense product.
func BenchmarkMul(b *testing.B) {
	src := benchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := src.Mul(src); err != nil {
			b.Fatal(err)
		}
	}
}
