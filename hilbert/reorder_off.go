//go:build !hilbertreorder

package hilbert

// darwinReorder enables the "darwinistic" reordering of reduction
// lists (Bruns–Ichim, remark 6(a)). Off by default: for the cone
// families this package is used on, the bookkeeping tends to cost more
// than it saves. Build with -tags hilbertreorder to switch it on.
const darwinReorder = false
