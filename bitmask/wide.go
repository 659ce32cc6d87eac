package bitmask

import "math/bits"

// Wide is a bitmask of up to 128 bits in two words: lo holds positions
// 0–63 and hi holds positions 64–127. The zero value is the empty mask.
type Wide struct {
	lo, hi uint64
}

// Get reports whether the bit at pos is set.
func (m Wide) Get(pos int) bool {
	switch {
	case pos < 0 || pos >= 128:
		return false
	case pos < 64:
		return m.lo&(1<<uint(pos)) != 0
	default:
		return m.hi&(1<<uint(pos-64)) != 0
	}
}

// Set returns a copy with the bit at pos set to value.
func (m Wide) Set(pos int, value bool) Wide {
	switch {
	case pos < 0 || pos >= 128:
		return m
	case pos < 64:
		if value {
			m.lo |= 1 << uint(pos)
		} else {
			m.lo &^= 1 << uint(pos)
		}
	default:
		if value {
			m.hi |= 1 << uint(pos-64)
		} else {
			m.hi &^= 1 << uint(pos-64)
		}
	}
	return m
}

// Union returns the bitwise or of the two masks.
func (m Wide) Union(other Wide) Wide {
	return Wide{m.lo | other.lo, m.hi | other.hi}
}

// Intersect returns the bitwise and of the two masks.
func (m Wide) Intersect(other Wide) Wide {
	return Wide{m.lo & other.lo, m.hi & other.hi}
}

// Subtract returns m with every bit of other cleared.
func (m Wide) Subtract(other Wide) Wide {
	return Wide{m.lo &^ other.lo, m.hi &^ other.hi}
}

// Flip returns m with its first n bits inverted.
func (m Wide) Flip(n int) Wide {
	switch {
	case n <= 0:
		return m
	case n < 64:
		m.lo ^= 1<<uint(n) - 1
	case n == 64:
		m.lo = ^m.lo
	case n < 128:
		m.lo = ^m.lo
		m.hi ^= 1<<uint(n-64) - 1
	default:
		m.lo = ^m.lo
		m.hi = ^m.hi
	}
	return m
}

// SubsetOf reports whether every set bit of m also appears in other.
func (m Wide) SubsetOf(other Wide) bool {
	return m.lo&^other.lo == 0 && m.hi&^other.hi == 0
}

// LessThan orders masks lexicographically from the highest bit down.
func (m Wide) LessThan(other Wide) bool {
	if m.hi != other.hi {
		return m.hi < other.hi
	}
	return m.lo < other.lo
}

// Bits returns the number of set bits.
func (m Wide) Bits() int {
	return bits.OnesCount64(m.lo) + bits.OnesCount64(m.hi)
}

// FirstBit returns the lowest set bit position, or -1 for the empty mask.
func (m Wide) FirstBit() int {
	if m.lo != 0 {
		return bits.TrailingZeros64(m.lo)
	}
	if m.hi != 0 {
		return 64 + bits.TrailingZeros64(m.hi)
	}
	return -1
}

// LastBit returns the highest set bit position, or -1 for the empty mask.
func (m Wide) LastBit() int {
	if m.hi != 0 {
		return 127 - bits.LeadingZeros64(m.hi)
	}
	if m.lo != 0 {
		return 63 - bits.LeadingZeros64(m.lo)
	}
	return -1
}

// AtMostOneBit reports whether at most one bit is set.
func (m Wide) AtMostOneBit() bool {
	switch {
	case m.lo == 0:
		return m.hi&(m.hi-1) == 0
	case m.hi == 0:
		return m.lo&(m.lo-1) == 0
	default:
		return false
	}
}

// ContainsIntersection reports whether every bit of x∩y is set in m.
func (m Wide) ContainsIntersection(x, y Wide) bool {
	return x.lo&y.lo&^m.lo == 0 && x.hi&y.hi&^m.hi == 0
}

// InUnion reports whether every set bit of m appears in x∪y.
func (m Wide) InUnion(x, y Wide) bool {
	return m.lo&^(x.lo|y.lo) == 0 && m.hi&^(x.hi|y.hi) == 0
}

// Equal reports whether the two masks are identical.
func (m Wide) Equal(other Wide) bool { return m == other }
