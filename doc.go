// Package lowtopo is an exact computational engine for low-dimensional
// topology in Go.
//
// 🚀 What is lowtopo?
//
//	A library of the computational kernels that do the hard work behind
//	triangulation and knot software:
//
//	  • Exact arithmetic: arbitrary-precision integers, dense integer
//	    matrices, Smith Normal Form with tracked basis changes
//	  • Algebra: marked abelian groups (ker M / im N with coordinates you
//	    can actually convert between) and the homomorphisms they induce
//	  • Enumeration: Hilbert bases of integer cones under combinatorial
//	    validity constraints, via the dual algorithm
//	  • Search: concurrent breadth-first exploration of a triangulation's
//	    or link diagram's equivalence class under Pachner / Reidemeister
//	    moves, bounded by a size budget
//
// ✨ Why choose lowtopo?
//
//   - Exact by construction — no floating point anywhere on a result path
//   - Deterministic          — single-threaded runs are fully reproducible
//   - Concurrent where it counts — the retriangulation search scales
//     across OS threads with one short-critical-section lock
//   - Pure Go               — no cgo, no GMP bindings
//
// The module is organized as flat, single-concern packages:
//
//	integer/       — arbitrary-precision Int (gcd, exact division, division algorithm)
//	matrix/        — dense integer matrices, Smith Normal Form, column echelon,
//	                 lattice pre-images
//	bitmask/       — fixed- and arbitrary-width bitmasks with subset/popcount ops
//	perm/          — compact permutations of {0..n-1} with rank/unrank
//	facet/         — canonical numbering of the sub-faces of a simplex
//	abelian/       — marked abelian groups and their homomorphisms
//	hilbert/       — Hilbert-basis enumeration (dual algorithm, validity constraints)
//	retriangulate/ — breadth-first retriangulation and link rewriting
//	dsu/           — disjoint-set union (connectivity bookkeeping)
//	progress/      — cancellable progress tracking with zerolog reporting
//
// Dive into DESIGN.md for the architectural ledger and per-package notes.
//
//	go get github.com/katalvlaran/lowtopo
package lowtopo
