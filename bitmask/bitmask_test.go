package bitmask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowtopo/bitmask"
)

// exercise runs the shared behavioral contract against any Mask flavour.
// zero must be the empty mask, and the positions must all be within the
// flavour's width.
func exercise[M bitmask.Mask[M]](t *testing.T, zero M, positions []int) {
	t.Helper()
	p0, p1, p2 := positions[0], positions[1], positions[2]

	// Empty mask basics.
	require.Equal(t, 0, zero.Bits())
	require.Equal(t, -1, zero.FirstBit())
	require.Equal(t, -1, zero.LastBit())
	require.True(t, zero.AtMostOneBit())

	a := zero.Set(p0, true).Set(p1, true)
	b := zero.Set(p1, true).Set(p2, true)

	// Functional mutators: zero is untouched.
	require.Equal(t, 0, zero.Bits())

	require.True(t, a.Get(p0))
	require.True(t, a.Get(p1))
	require.False(t, a.Get(p2))
	require.Equal(t, 2, a.Bits())
	require.Equal(t, p0, a.FirstBit())
	require.Equal(t, p1, a.LastBit())
	require.False(t, a.AtMostOneBit())
	require.True(t, zero.Set(p2, true).AtMostOneBit())

	// Union / intersect / subtract.
	u := a.Union(b)
	require.Equal(t, 3, u.Bits())
	in := a.Intersect(b)
	require.Equal(t, 1, in.Bits())
	require.True(t, in.Get(p1))
	d := a.Subtract(b)
	require.Equal(t, 1, d.Bits())
	require.True(t, d.Get(p0))

	// Subset and equality.
	require.True(t, in.SubsetOf(a))
	require.True(t, in.SubsetOf(b))
	require.False(t, u.SubsetOf(a))
	require.True(t, a.Equal(zero.Set(p1, true).Set(p0, true)))
	require.False(t, a.Equal(b))

	// Lexicographic order: the mask whose highest differing bit is set
	// is the larger.
	require.True(t, a.LessThan(b))
	require.False(t, b.LessThan(a))
	require.False(t, a.LessThan(a))

	// ContainsIntersection and InUnion.
	require.True(t, a.ContainsIntersection(a, b)) // a∩b = {p1} ⊆ a
	require.True(t, in.InUnion(a, b))
	require.True(t, u.InUnion(a, b))
	onlyP2 := zero.Set(p2, true)
	require.False(t, onlyP2.SubsetOf(a))
	require.False(t, zero.Set(p0, true).ContainsIntersection(b, b))

	// Clearing bits.
	cleared := a.Set(p0, false)
	require.False(t, cleared.Get(p0))
	require.Equal(t, 1, cleared.Bits())

	// Flip over a prefix covering all three positions.
	n := p2 + 1
	f := a.Flip(n)
	require.False(t, f.Get(p0))
	require.False(t, f.Get(p1))
	require.True(t, f.Get(p2))
	require.True(t, f.Flip(n).Equal(a), "double flip must restore")
}

func TestSmall(t *testing.T) {
	exercise[bitmask.Small](t, 0, []int{0, 5, 63})
	exercise[bitmask.Small](t, 0, []int{1, 2, 3})
}

func TestWide(t *testing.T) {
	// Positions straddling the word boundary.
	exercise[bitmask.Wide](t, bitmask.Wide{}, []int{3, 64, 127})
	exercise[bitmask.Wide](t, bitmask.Wide{}, []int{0, 1, 63})
}

func TestHuge(t *testing.T) {
	exercise[bitmask.Huge](t, bitmask.NewHuge(300), []int{2, 130, 299})
	exercise[bitmask.Huge](t, bitmask.NewHuge(70), []int{0, 64, 69})
}

// TestHugeLength verifies fixed length semantics and the mismatch panic.
func TestHugeLength(t *testing.T) {
	m := bitmask.NewHuge(10)
	require.Equal(t, 10, m.Len())

	// Out-of-range positions are ignored.
	require.Equal(t, m, m.Set(10, true))
	require.False(t, m.Get(10))

	other := bitmask.NewHuge(11)
	require.Panics(t, func() { m.Union(other) })
}

// TestSmallOutOfRange verifies positions past the word are ignored.
func TestSmallOutOfRange(t *testing.T) {
	var m bitmask.Small
	require.Equal(t, m, m.Set(64, true))
	require.False(t, m.Get(64))
	require.False(t, m.Get(-1))
}

// TestFlipBeyondLength clamps Huge flips at the semantic length.
func TestFlipBeyondLength(t *testing.T) {
	m := bitmask.NewHuge(5).Set(1, true)
	f := m.Flip(100)
	require.Equal(t, 4, f.Bits())
	require.False(t, f.Get(1))
	require.True(t, f.Get(0))
	require.False(t, f.Get(5))
}
