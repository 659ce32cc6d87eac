package progress_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowtopo/progress"
)

// TestOpenLifecycle walks a tracker through a typical run.
func TestOpenLifecycle(t *testing.T) {
	var tr progress.Open
	tr.NewStage("reducing")
	require.Equal(t, "reducing", tr.Stage())
	require.True(t, tr.SetPercent(50))
	require.Equal(t, 50.0, tr.Percent())

	tr.IncSteps()
	tr.IncSteps()
	require.Equal(t, uint64(2), tr.Steps())

	require.False(t, tr.IsFinished())
	tr.SetFinished()
	require.True(t, tr.IsFinished())
}

// TestCancellation verifies SetPercent reports the cancel flag.
func TestCancellation(t *testing.T) {
	var tr progress.Open
	require.False(t, tr.IsCancelled())
	require.True(t, tr.SetPercent(10))
	tr.Cancel()
	require.True(t, tr.IsCancelled())
	require.False(t, tr.SetPercent(20), "SetPercent must report cancellation")
}

// TestConcurrentSteps hammers IncSteps from several goroutines.
func TestConcurrentSteps(t *testing.T) {
	var tr progress.Open
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				tr.IncSteps()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(800), tr.Steps())
}

// TestLogTracker checks that stages and completion reach the logger.
func TestLogTracker(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	tr := progress.NewLogTracker(log, 2)

	tr.NewStage("exploring")
	tr.IncSteps()
	tr.IncSteps() // hits the stepEvery boundary
	tr.SetFinished()

	out := buf.String()
	require.True(t, strings.Contains(out, "exploring"))
	require.True(t, strings.Contains(out, "stage started"))
	require.True(t, strings.Contains(out, "finished"))
}
