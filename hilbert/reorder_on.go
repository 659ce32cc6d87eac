//go:build hilbertreorder

package hilbert

// darwinReorder is enabled by the hilbertreorder build tag: reduction
// lists keep their most recently successful reducer near the front.
const darwinReorder = true
