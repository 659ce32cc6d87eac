// Package bitmask provides the small fixed-width and arbitrary-width
// bitmasks used by the Hilbert-basis enumeration and by validity
// constraints.
//
// What
//
//   - Small: up to 64 bits in a single machine word.
//   - Wide:  up to 128 bits in two machine words.
//   - Huge:  arbitrary width, backed by a word slice whose semantic
//     length is fixed at construction (NewHuge).
//
// All three are value types with a functional method surface: mutators
// return new values and never modify the receiver, so masks can be
// shared across goroutines without synchronization. The three flavours
// implement the same generic Mask[M] constraint, which is what lets the
// enumeration code be instantiated once per width.
//
// Why
//
//	The Hilbert-basis dual algorithm tests millions of candidate vectors
//	against "at most one of these coordinates may be non-zero"
//	constraints; mask intersection plus a popcount beats re-scanning
//	exact-integer coordinates by orders of magnitude. Picking the
//	narrowest mask type for the ambient dimension keeps the inner loop
//	in registers.
//
// Caveats
//
//	For Small and Wide, bits at positions past the semantic length are
//	implementation-internal: Flip takes the length explicitly and the
//	comparison operations only ever observe bits that were set through
//	the public surface. Huge fixes its length at NewHuge(n) and ignores
//	out-of-range positions.
package bitmask
