package bitmask

import "math/bits"

// Small is a bitmask of up to 64 bits in a single word. The zero value
// is the empty mask. Positions outside 0..63 are silently ignored by an
// explicit bounds check in Get and Set; callers dispatch on width
// before choosing Small.
type Small uint64

// Get reports whether the bit at pos is set.
func (m Small) Get(pos int) bool {
	if pos < 0 || pos >= 64 {
		return false
	}
	return m&(1<<uint(pos)) != 0
}

// Set returns a copy with the bit at pos set to value.
func (m Small) Set(pos int, value bool) Small {
	if pos < 0 || pos >= 64 {
		return m
	}
	if value {
		return m | 1<<uint(pos)
	}
	return m &^ (1 << uint(pos))
}

// Union returns m | other.
func (m Small) Union(other Small) Small { return m | other }

// Intersect returns m & other.
func (m Small) Intersect(other Small) Small { return m & other }

// Subtract returns m with every bit of other cleared.
func (m Small) Subtract(other Small) Small { return m &^ other }

// Flip returns m with its first n bits inverted.
func (m Small) Flip(n int) Small {
	if n <= 0 {
		return m
	}
	if n >= 64 {
		return ^m
	}
	return m ^ (1<<uint(n) - 1)
}

// SubsetOf reports whether every set bit of m also appears in other.
func (m Small) SubsetOf(other Small) bool { return m&^other == 0 }

// LessThan orders masks lexicographically from the highest bit down.
func (m Small) LessThan(other Small) bool { return m < other }

// Bits returns the number of set bits.
func (m Small) Bits() int { return bits.OnesCount64(uint64(m)) }

// FirstBit returns the lowest set bit position, or -1 for the empty mask.
func (m Small) FirstBit() int {
	if m == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(m))
}

// LastBit returns the highest set bit position, or -1 for the empty mask.
func (m Small) LastBit() int {
	if m == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(uint64(m))
}

// AtMostOneBit reports whether at most one bit is set.
func (m Small) AtMostOneBit() bool { return m&(m-1) == 0 }

// ContainsIntersection reports whether every bit of x∩y is set in m.
func (m Small) ContainsIntersection(x, y Small) bool { return x&y&^m == 0 }

// InUnion reports whether every set bit of m appears in x∪y.
func (m Small) InUnion(x, y Small) bool { return m&^(x|y) == 0 }

// Equal reports whether the two masks are identical.
func (m Small) Equal(other Small) bool { return m == other }
