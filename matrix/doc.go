// Package matrix provides dense matrices over exact integers together with
// the normal-form machinery the rest of lowtopo is built on.
//
// What
//
//   - Dense: a row-major r×c matrix of integer.Int with fixed dimensions,
//     entry access, row/column swaps, identity construction and
//     multiplication.
//   - SmithNormalForm: in-place Smith Normal Form with four tracked
//     basis-change matrices R, Ri, C, Ci such that C·X_in·R = X_out,
//     R·Ri = Ri·R = I and C·Ci = Ci·C = I.
//   - ColumnEchelonForm: reduced column echelon form restricted to a
//     designated list of rows, accumulating the change of basis.
//   - PreimageOfLattice: a basis for the kernel of a homomorphism
//     Z^n → Z^free ⊕ ⨁ Z/dᵢ.
//   - Rank: the rank of an integer matrix.
//
// Why
//
//	Smith Normal Form with tracked unimodular basis changes is the engine
//	behind marked abelian groups: it turns an arbitrary presentation into
//	the canonical Z^r ⊕ Z/d₁ ⊕ … ⊕ Z/dₖ decomposition while remembering
//	how to convert coordinates back and forth.
//
// Determinism
//
//	All routines are deterministic: no randomness, no global state.
//	Dense values are not safe for concurrent mutation, but distinct
//	matrices may be used freely from distinct goroutines.
//
// Errors
//
//   - ErrBadShape            if requested dimensions are negative.
//   - ErrOutOfRange          if an index is outside the matrix.
//   - ErrDimensionMismatch   if operand shapes are incompatible.
//   - ErrNilMatrix           if a nil *Dense is passed where one is required.
//
// All algorithms return these sentinels and tests check them via errors.Is.
// Panics are reserved for programmer errors (exact division by a
// non-divisor inside the normal-form routines).
package matrix
