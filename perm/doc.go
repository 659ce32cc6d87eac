// Package perm provides compact permutations of {0..n-1} for n ≤ 16,
// the gluing maps of simplicial faces.
//
// What
//
//   - Perm: a permutation stored as a packed image code (4 bits per
//     image), a canonical compact form that preserves bijectivity and
//     makes equality a word comparison.
//   - Construction: Identity, FromImages, Unrank, Swap.
//   - Algebra: Compose (right-to-left), Inverse, Reverse, Rot, Sign.
//   - Indexing: Rank/Unrank map bijectively to the lexicographic index
//     of the image sequence within S_n.
//
// Composition convention
//
//	Compose follows function composition: (a.Compose(b)).Image(i) ==
//	a.Image(b.Image(i)) — b acts first.
//
// Why
//
//	Face gluings, face numbering and canonical signatures all shuffle a
//	handful of vertex labels; a one-word value type with O(1) image
//	lookup keeps those hot paths allocation-free.
//
// Errors
//
//   - ErrBadImages  if FromImages is not a bijection on {0..n-1}.
//   - ErrBadDegree  if n is outside [0, 16].
//   - ErrBadIndex   if Unrank is past n!.
package perm
