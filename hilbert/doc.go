// Package hilbert enumerates Hilbert bases: the minimal generating sets
// of the integer points in a pointed rational cone.
//
// What
//
//	Enumerate computes the Hilbert basis of
//
//	    { x ∈ Z_{≥0}^n : S·x = 0, x valid },
//
//	where S is a matrix of hyperplanes through the origin and validity
//	means that, for each constraint group, at most one of the named
//	coordinates is non-zero. Each basis vector is handed to an action
//	callback exactly once; the output contains no duplicates and no
//	vector that is a sum of two others.
//
// How
//
//	The dual algorithm: start from the unit-vector basis of the
//	non-negative orthant and intersect one hyperplane at a time. For
//	each hyperplane the working basis splits into zero/positive/negative
//	sides; sums of (positive, negative) pairs involving at least one
//	vector fresh in the current round are generated, pre-pruned through
//	the constraint bitmasks (invalidity survives addition, so pruning
//	early is sound), reduced against the dominance order, and spliced
//	in. When a round generates nothing new, the zero side is the basis
//	of the enlarged intersection. After the last hyperplane the basis is
//	decanted into the action.
//
//	Hyperplanes are processed with the caller's first WithInitialRows
//	rows in the given order and the remainder sorted by a positivity
//	heuristic that prefers sparse rows with few positive entries.
//
//	The bitmask flavour is chosen from the ambient dimension at the
//	entry point (one word up to 64 coordinates, two words to 128, a
//	word slice beyond) and the whole enumeration is instantiated per
//	flavour.
//
// Termination
//
//	Guaranteed by the finiteness of Hilbert bases; the worst-case
//	running time is exponential in the dimension.
//
// Options and errors
//
//   - WithInitialRows(k)  processes the first k rows in caller order.
//   - WithTracker(t)      reports per-hyperplane progress and polls for
//     cancellation; a cancelled run returns ErrCancelled and emits
//     nothing.
//   - ErrOptionViolation  for invalid options.
//   - ErrBadConstraint    for constraint coordinates outside [0, n).
//
// An optional "darwinistic" reordering of the reduction lists (keep the
// most recently successful reducer near the front) can be compiled in
// with the build tag "hilbertreorder"; it is off by default.
package hilbert
