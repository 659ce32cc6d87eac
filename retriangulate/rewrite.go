// The Reidemeister move schedule for link diagrams, including the
// 2-cell walk that finds legal R2 overpass insertions.

package retriangulate

import "fmt"

// StrandRef addresses one strand of one crossing in a link diagram:
// Strand 0 is the strand passing under, 1 the strand passing over.
// The negative crossing index of NilStrand marks "no strand" (used when a
// twist is added to a zero-crossing unknot component).
type StrandRef struct {
	Crossing int
	Strand   int
}

// NilStrand is the null strand reference.
var NilStrand = StrandRef{Crossing: -1}

// IsNil reports whether the reference addresses no strand.
func (r StrandRef) IsNil() bool { return r.Crossing < 0 }

// Jump switches to the other strand at the same crossing.
func (r StrandRef) Jump() StrandRef {
	r.Strand ^= 1
	return r
}

// Diagram is the capability surface a link diagram exposes to the
// rewrite schedule. With-style moves return a transformed copy and
// report legality; R1 and R2Virtual construct moves that are known
// legal and always return the new diagram.
type Diagram[T Object] interface {
	Object
	// HasTrivialComponent reports whether some component carries no
	// crossings.
	HasTrivialComponent() bool
	// CrossingSign returns +1 or -1 for crossing c.
	CrossingSign(c int) int
	// Next and Prev walk along the link orientation.
	Next(ref StrandRef) StrandRef
	Prev(ref StrandRef) StrandRef
	// WithR1 undoes a twist at crossing c when legal.
	WithR1(c int) (T, bool)
	// WithR2 removes the overlap at crossing c when legal.
	WithR2(c int) (T, bool)
	// WithR3 performs the triangle move at crossing c on the given side
	// when legal.
	WithR3(c int, side int) (T, bool)
	// R1 adds a twist on the given arc (NilStrand twists a
	// zero-crossing component) with the given side and sign.
	R1(arc StrandRef, side, sign int) T
	// R2Virtual passes upper over lower, adding two crossings. The
	// caller guarantees the two arcs bound a common 2-cell, so no
	// planarity test is needed.
	R2Virtual(upper StrandRef, upperSide int, lower StrandRef, lowerSide int) T
}

// RewriteSchedule drives the link rewriting search, mirroring the
// retriangulation schedules: crossing-reducing moves first, then
// crossing-preserving ones, then additions within the budget.
type RewriteSchedule[T Diagram[T]] struct {
	// Decode reconstructs a diagram from its canonical signature.
	Decode func(sig string) (T, error)
}

// Stage implements Propagator.
func (RewriteSchedule[T]) Stage() string { return "Exploring diagrams" }

// PropagateFrom implements Propagator.
func (s RewriteSchedule[T]) PropagateFrom(sig string, maxSize int,
	emit func(alt T, derivedFrom string) bool) error {
	t, err := s.Decode(sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if t.Size() == 0 {
		// A zero-crossing unlink. The only available move is a twist on
		// one unknot component; side and sign are both immaterial by
		// reversal and reflection symmetry.
		if t.IsEmpty() || maxSize == 0 {
			return nil
		}
		emit(t.R1(NilStrand, 0, 1), sig)
		// Moves that pass one unknot component over another would merge
		// diagram components; the schedule never proposes those.
		return nil
	}

	// Moves that reduce the number of crossings.
	for i := 0; i < t.Size(); i++ {
		if alt, ok := t.WithR1(i); ok {
			if emit(alt, sig) {
				return nil
			}
		}
	}
	for i := 0; i < t.Size(); i++ {
		if alt, ok := t.WithR2(i); ok {
			if emit(alt, sig) {
				return nil
			}
		}
	}

	// Moves that preserve the number of crossings.
	for i := 0; i < t.Size(); i++ {
		for side := 0; side < 2; side++ {
			if alt, ok := t.WithR3(i, side); ok {
				if emit(alt, sig) {
					return nil
				}
			}
		}
	}

	// All that remains adds crossings.
	if t.Size() >= maxSize {
		return nil
	}

	// R1 twists on arcs are always legal.
	for i := 0; i < t.Size(); i++ {
		for strand := 0; strand < 2; strand++ {
			for side := 0; side < 2; side++ {
				for sign := -1; sign <= 1; sign += 2 {
					alt := t.R1(StrandRef{Crossing: i, Strand: strand}, side, sign)
					if emit(alt, sig) {
						return nil
					}
				}
			}
		}
	}
	if t.HasTrivialComponent() {
		for sign := -1; sign <= 1; sign += 2 {
			alt := t.R1(NilStrand, 0, sign)
			if emit(alt, sig) {
				return nil
			}
		}
	}

	if t.Size()+1 < maxSize {
		if stop := s.propagateOverpasses(t, sig, emit); stop {
			return nil
		}
		// Passing an unknot component over another component would
		// merge them; never proposed.
	}
	return nil
}

// propagateOverpasses walks, for every oriented arc and side, the
// 2-cell of the diagram containing that arc, always turning left. Every
// other edge of the cell is a legal place to slide the arc over,
// inserting two crossings.
//
// The walk state is (ref, forward): ref is the strand at the start of
// the current cell edge with respect to the walking direction, and
// forward records whether that direction agrees with the link
// orientation. After stepping to the next edge and jumping to the other
// strand, forward flips according to the crossing sign and the strand
// just landed on.
func (s RewriteSchedule[T]) propagateOverpasses(t T, sig string,
	emit func(alt T, derivedFrom string) bool) bool {
	// A 2-cell has at most as many edges as the diagram has strands;
	// the bound guards against an inconsistent Diagram implementation.
	maxSteps := 4*t.Size() + 4

	for i := 0; i < t.Size(); i++ {
		for strand := 0; strand < 2; strand++ {
			upper := StrandRef{Crossing: i, Strand: strand}
			for upperSide := 0; upperSide < 2; upperSide++ {
				ref := upper
				forward := true
				if upperSide == 1 {
					// Traversing the arc against its orientation: start
					// from the far endpoint.
					ref = t.Next(ref)
					forward = false
				}

				for step := 0; step < maxSteps; step++ {
					if forward {
						ref = t.Next(ref).Jump()
						// forward stays true for (sign, strand):
						// +,0 and -,1.
						if t.CrossingSign(ref.Crossing) > 0 {
							forward = ref.Strand == 0
						} else {
							forward = ref.Strand != 0
						}
					} else {
						ref = t.Prev(ref).Jump()
						// forward becomes true for (sign, strand):
						// -,0 and +,1.
						if t.CrossingSign(ref.Crossing) > 0 {
							forward = ref.Strand != 0
						} else {
							forward = ref.Strand == 0
						}
					}

					lower := ref
					lowerSide := 0
					if !forward {
						lower = t.Prev(ref)
						lowerSide = 1
					}

					if lower == upper && lowerSide == upperSide {
						// Completed the cycle around the 2-cell.
						break
					}

					alt := t.R2Virtual(upper, upperSide, lower, lowerSide)
					if emit(alt, sig) {
						return true
					}
				}
			}
		}
	}
	return false
}
