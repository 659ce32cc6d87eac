package abelian

import "errors"

var (
	// ErrPrecondition is returned for mismatched chain dimensions, a
	// negative modulus, or a chain segment with M·N != 0.
	ErrPrecondition = errors.New("abelian: precondition violation")

	// ErrNotACycle is returned when a chain vector lies outside ker M
	// (outside the mod-p cycle lattice when a modulus is in force).
	ErrNotACycle = errors.New("abelian: vector is not a cycle")

	// ErrNotABoundary is returned when a cycle does not lie in im N.
	ErrNotABoundary = errors.New("abelian: vector is not a boundary")

	// ErrInvalidArgument is returned for out-of-range generator or
	// invariant-factor indices.
	ErrInvalidArgument = errors.New("abelian: argument out of range")
)
