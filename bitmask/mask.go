package bitmask

// Mask is the generic constraint shared by Small, Wide and Huge.
// Code that is generic over the mask width (such as the Hilbert-basis
// enumeration) instantiates once per concrete flavour.
//
// All implementations are value types with functional mutators: Set,
// Union, Intersect, Subtract and Flip return new values.
type Mask[M any] interface {
	// Get reports whether the bit at pos is set.
	Get(pos int) bool
	// Set returns a copy with the bit at pos set to value.
	Set(pos int, value bool) M
	// Union returns the bitwise or of the two masks.
	Union(other M) M
	// Intersect returns the bitwise and of the two masks.
	Intersect(other M) M
	// Subtract returns a copy with every bit of other cleared.
	Subtract(other M) M
	// Flip returns a copy with the first n bits inverted.
	Flip(n int) M
	// SubsetOf reports whether every set bit also appears in other.
	SubsetOf(other M) bool
	// LessThan is a total order (lexicographic from the highest bit down),
	// usable as a container key comparison.
	LessThan(other M) bool
	// Bits returns the number of set bits.
	Bits() int
	// FirstBit returns the lowest set bit position, or -1 if none.
	FirstBit() int
	// LastBit returns the highest set bit position, or -1 if none.
	LastBit() int
	// AtMostOneBit reports whether at most one bit is set.
	AtMostOneBit() bool
	// ContainsIntersection reports whether every bit of x∩y is set here.
	ContainsIntersection(x, y M) bool
	// InUnion reports whether every set bit appears in x∪y.
	InUnion(x, y M) bool
	// Equal reports whether the two masks have identical bits.
	Equal(other M) bool
}
