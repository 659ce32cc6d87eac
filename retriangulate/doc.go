// Package retriangulate explores the equivalence class of a
// triangulation or link diagram under local moves, breadth-first over
// canonical signatures, bounded by a size budget.
//
// What
//
//	Retriangulate starts from one object, computes its canonical
//	signature, and repeatedly: pops the most promising signature from a
//	shared queue, reconstructs the object, enumerates every legal local
//	move whose result stays within the size budget, and inserts each
//	newly seen signature. An action callback fires exactly once per
//	distinct signature; returning true from the action stops the whole
//	search and makes Retriangulate return true.
//
//	The traversal is generic: the engine only needs an Object (size,
//	emptiness, canonical signature) and a Propagator that knows the
//	moves. Three Propagators ship with the package:
//
//	  - PachnerSchedule3: bistellar moves for 3-dimensional
//	    triangulations (edge moves first, then triangle moves under the
//	    size budget);
//	  - PachnerSchedule4: the 4-dimensional schedule (vertices, edges,
//	    triangles, then tetrahedron moves at +2 and the always-legal
//	    pentachoron moves at +4);
//	  - RewriteSchedule: Reidemeister moves for link diagrams (R1/R2
//	    reducing, R3 preserving, then R1 twists and R2 overpasses found
//	    by walking the 2-cells of the diagram).
//
// Concurrency
//
//	Workers share one mutex guarding the signature map, the priority
//	queue, the running count and the done flag. Long work (signature
//	reconstruction, move enumeration, signature computation) happens
//	outside the lock; map insertion never invalidates the queued keys
//	because Go strings are immutable values. Idle workers park on a
//	condition variable until new work arrives or everyone has finished.
//	The action callback runs while the lock is held: keep it short,
//	never block in it, and never re-enter the engine from it. A
//	panicking worker poisons the search and the entry point surfaces
//	the panic as an error.
//
// Priority
//
//	Shorter signatures first (a cheap proxy for smaller objects, which
//	is the point of the search), first-in-first-out within equal
//	lengths — which also makes single-threaded runs fully
//	deterministic.
//
// Errors
//
//   - ErrInvalidSignature  when a propagator cannot decode a signature.
//   - ErrCancelled         when the progress tracker cancels the search.
//   - ErrOptionViolation   for invalid options.
//   - ErrWorkerPanic       when a worker panicked and poisoned the run.
package retriangulate
