package retriangulate_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowtopo/retriangulate"
)

// TestUnknotUntwists is the S6 shape: two positive curls, no extra
// crossings allowed, and the action succeeds on the zero-crossing
// diagram.
func TestUnknotUntwists(t *testing.T) {
	found, err := retriangulate.Retriangulate[curl](curl{n: 2}, 0,
		curlSchedule(),
		func(sig string, obj curl) bool { return obj.Size() == 0 })
	require.NoError(t, err)
	require.True(t, found)
}

// TestRewriteBudget: from one curl with two extra crossings allowed,
// exactly the crossing counts 0..3 are reachable.
func TestRewriteBudget(t *testing.T) {
	var mu sync.Mutex
	var sizes []int
	found, err := retriangulate.Retriangulate[curl](curl{n: 1}, 2,
		curlSchedule(),
		func(sig string, obj curl) bool {
			mu.Lock()
			sizes = append(sizes, obj.Size())
			mu.Unlock()
			return false
		})
	require.NoError(t, err)
	require.False(t, found)
	sort.Ints(sizes)
	require.Equal(t, []int{0, 1, 2, 3}, sizes)
}

// TestZeroCrossingTwist: the only move on a zero-crossing unknot is the
// single twist, and it is suppressed when no crossings may be added.
func TestZeroCrossingTwist(t *testing.T) {
	var mu sync.Mutex
	var sizes []int
	_, err := retriangulate.Retriangulate[curl](curl{n: 0}, 1,
		curlSchedule(),
		func(sig string, obj curl) bool {
			mu.Lock()
			sizes = append(sizes, obj.Size())
			mu.Unlock()
			return false
		})
	require.NoError(t, err)
	sort.Ints(sizes)
	require.Equal(t, []int{0, 1}, sizes)

	// With a zero budget the start diagram is the whole search.
	sizes = nil
	_, err = retriangulate.Retriangulate[curl](curl{n: 0}, 0,
		curlSchedule(),
		func(sig string, obj curl) bool {
			sizes = append(sizes, obj.Size())
			return false
		})
	require.NoError(t, err)
	require.Equal(t, []int{0}, sizes)
}

// TestOverpassWalkEmits: with room for two more crossings, the 2-cell
// walk proposes R2 insertions, reaching size n+2 from a single curl.
func TestOverpassWalkEmits(t *testing.T) {
	reached := false
	_, err := retriangulate.Retriangulate[curl](curl{n: 1}, 2,
		curlSchedule(),
		func(sig string, obj curl) bool {
			if obj.Size() == 3 {
				reached = true
			}
			return reached
		})
	require.NoError(t, err)
	require.True(t, reached, "R2 overpasses must reach three crossings")
}

// TestRewriteMultiThread: worker count does not change the visited set.
func TestRewriteMultiThread(t *testing.T) {
	run := func(threads int) []int {
		var mu sync.Mutex
		var sizes []int
		_, err := retriangulate.Retriangulate[curl](curl{n: 2}, 2,
			curlSchedule(),
			func(sig string, obj curl) bool {
				mu.Lock()
				sizes = append(sizes, obj.Size())
				mu.Unlock()
				return false
			},
			retriangulate.WithThreads(threads))
		require.NoError(t, err)
		sort.Ints(sizes)
		return sizes
	}
	require.Equal(t, run(1), run(4))
}

// TestStrandRef covers the tiny reference helpers.
func TestStrandRef(t *testing.T) {
	require.True(t, retriangulate.NilStrand.IsNil())
	r := retriangulate.StrandRef{Crossing: 2, Strand: 0}
	require.False(t, r.IsNil())
	require.Equal(t, 1, r.Jump().Strand)
	require.Equal(t, 2, r.Jump().Crossing)
	require.Equal(t, 0, r.Jump().Jump().Strand)
}

// TestCake4Schedule walks the 4-dimensional schedule's budget rules:
// tetrahedron moves need +2 headroom and pentachoron moves +4.
func TestCake4Schedule(t *testing.T) {
	var mu sync.Mutex
	var sizes []int
	_, err := retriangulate.Retriangulate[cake](cake{n: 3}, 3,
		cakeSchedule(),
		func(sig string, obj cake) bool {
			mu.Lock()
			sizes = append(sizes, obj.Size())
			mu.Unlock()
			return false
		})
	require.NoError(t, err)
	sort.Ints(sizes)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, sizes)
}
