// Package matrix: sentinel error set.
// All algorithms return these sentinels and tests match them via errors.Is.
// If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary; callers still use errors.Is to match.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are negative.
	// Zero-row and zero-column matrices are legal: chain complexes
	// routinely contain empty boundary maps.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix. Public indexers (At/Set) return this rather than panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols() != b.Rows(), or basis-change
	// matrices of the wrong shape passed to a normal-form routine.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
