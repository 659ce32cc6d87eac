package perm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowtopo/perm"
)

// TestIdentity covers construction and the identity predicate.
func TestIdentity(t *testing.T) {
	id, err := perm.Identity(5)
	require.NoError(t, err)
	require.True(t, id.IsIdentity())
	require.Equal(t, 5, id.Degree())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, id.Image(i))
	}

	_, err = perm.Identity(17)
	require.ErrorIs(t, err, perm.ErrBadDegree)
}

// TestFromImages validates bijection checking.
func TestFromImages(t *testing.T) {
	p, err := perm.FromImages(2, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, p.Image(0))
	require.Equal(t, []int{2, 0, 1}, p.Images())

	_, err = perm.FromImages(0, 0, 1)
	require.ErrorIs(t, err, perm.ErrBadImages)
	_, err = perm.FromImages(0, 3)
	require.ErrorIs(t, err, perm.ErrBadImages)
}

// TestInverse checks p∘p⁻¹ = id and preimages.
func TestInverse(t *testing.T) {
	p, _ := perm.FromImages(3, 0, 2, 1)
	inv := p.Inverse()
	require.True(t, p.Compose(inv).IsIdentity())
	require.True(t, inv.Compose(p).IsIdentity())
	for i := 0; i < 4; i++ {
		require.Equal(t, i, inv.Image(p.Image(i)))
		require.Equal(t, p.Preimage(i), inv.Image(i))
	}
}

// TestCompose verifies the right-to-left convention.
func TestCompose(t *testing.T) {
	a, _ := perm.FromImages(1, 2, 0) // a: 0→1,1→2,2→0
	b, _ := perm.FromImages(0, 2, 1) // b: 1↔2
	c := a.Compose(b)
	for i := 0; i < 3; i++ {
		require.Equal(t, a.Image(b.Image(i)), c.Image(i))
	}
	// b acts first: 1 → 2 → 0.
	require.Equal(t, 0, c.Image(1))
}

// TestReverse checks the reversed image sequence.
func TestReverse(t *testing.T) {
	p, _ := perm.FromImages(2, 0, 3, 1)
	r := p.Reverse()
	require.Equal(t, []int{1, 3, 0, 2}, r.Images())
	require.True(t, r.Reverse().Equal(p))
}

// TestRot checks cyclic rotations including negative shifts.
func TestRot(t *testing.T) {
	r, err := perm.Rot(4, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 0}, r.Images())

	r, _ = perm.Rot(4, -1)
	require.Equal(t, []int{3, 0, 1, 2}, r.Images())

	r, _ = perm.Rot(4, 0)
	require.True(t, r.IsIdentity())
}

// TestRankUnrank walks all of S_4 and checks the round trip plus
// lexicographic monotonicity.
func TestRankUnrank(t *testing.T) {
	var prev perm.Perm
	for idx := 0; idx < 24; idx++ {
		p, err := perm.Unrank(4, idx)
		require.NoError(t, err)
		require.Equal(t, idx, p.Rank())
		if idx > 0 {
			// Image sequences must increase lexicographically.
			require.True(t, lexLess(prev.Images(), p.Images()),
				"S_4 order broken at index %d", idx)
		}
		prev = p
	}

	_, err := perm.Unrank(4, 24)
	require.ErrorIs(t, err, perm.ErrBadIndex)
	_, err = perm.Unrank(4, -1)
	require.ErrorIs(t, err, perm.ErrBadIndex)
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// TestSign checks parity on transpositions and cycles.
func TestSign(t *testing.T) {
	id, _ := perm.Identity(4)
	require.Equal(t, 1, id.Sign())

	swap, err := perm.Swap(4, 0, 1)
	require.NoError(t, err)
	require.Equal(t, -1, swap.Sign())

	threeCycle, _ := perm.FromImages(1, 2, 0)
	require.Equal(t, 1, threeCycle.Sign())

	// Sign is multiplicative.
	p, _ := perm.Unrank(4, 13)
	q, _ := perm.Unrank(4, 7)
	require.Equal(t, p.Sign()*q.Sign(), p.Compose(q).Sign())
}

// TestString pins the rendering format.
func TestString(t *testing.T) {
	p, _ := perm.FromImages(0, 2, 1, 3)
	require.Equal(t, "(0 2 1 3)", p.String())
}

// TestDegreeMismatchPanics documents the programmer-error contract.
func TestDegreeMismatchPanics(t *testing.T) {
	a, _ := perm.Identity(3)
	b, _ := perm.Identity(4)
	require.Panics(t, func() { a.Compose(b) })
	require.Panics(t, func() { a.Image(3) })
}
