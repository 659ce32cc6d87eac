// Package progress provides the cancellable progress trackers consumed
// by the long-running routines in hilbert and retriangulate.
//
// A Tracker is polled between work items, never inside a critical
// section. Cancellation is cooperative: Cancel flips a flag, the worker
// observes it at its next poll and unwinds cleanly.
//
// Two implementations ship with the package: Open, a plain thread-safe
// tracker suitable for driving UI, and the zerolog-backed reporter
// returned by NewLogTracker for long batch runs.
package progress

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Tracker receives progress reports from a long-running routine and can
// request cancellation. Implementations must be safe for concurrent use:
// several workers may report through the same tracker.
type Tracker interface {
	// NewStage announces a new processing stage.
	NewStage(desc string)
	// SetPercent records completion of the current stage and reports
	// whether the routine should keep going (false once cancelled).
	SetPercent(percent float64) bool
	// IncSteps records one unit of work in an open-ended stage.
	IncSteps()
	// IsCancelled reports whether cancellation has been requested.
	IsCancelled() bool
	// SetFinished marks the whole operation complete.
	SetFinished()
}

// Open is the basic thread-safe tracker. The zero value is ready to use.
type Open struct {
	mu        sync.Mutex
	stage     string
	percent   float64
	steps     uint64
	finished  bool
	cancelled atomic.Bool
}

// NewStage implements Tracker.
func (t *Open) NewStage(desc string) {
	t.mu.Lock()
	t.stage = desc
	t.percent = 0
	t.mu.Unlock()
}

// SetPercent implements Tracker.
func (t *Open) SetPercent(percent float64) bool {
	t.mu.Lock()
	t.percent = percent
	t.mu.Unlock()
	return !t.cancelled.Load()
}

// IncSteps implements Tracker.
func (t *Open) IncSteps() {
	t.mu.Lock()
	t.steps++
	t.mu.Unlock()
}

// Steps returns the number of units recorded so far.
func (t *Open) Steps() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.steps
}

// Stage returns the current stage description.
func (t *Open) Stage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stage
}

// Percent returns the last reported completion percentage.
func (t *Open) Percent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.percent
}

// Cancel requests cooperative cancellation.
func (t *Open) Cancel() { t.cancelled.Store(true) }

// IsCancelled implements Tracker.
func (t *Open) IsCancelled() bool { return t.cancelled.Load() }

// SetFinished implements Tracker.
func (t *Open) SetFinished() {
	t.mu.Lock()
	t.finished = true
	t.mu.Unlock()
}

// IsFinished reports whether SetFinished has been called.
func (t *Open) IsFinished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}

// LogTracker wraps Open and mirrors stage transitions, step milestones
// and completion into a structured logger.
type LogTracker struct {
	Open
	log zerolog.Logger
	// stepEvery controls how often IncSteps emits; 0 silences steps.
	stepEvery uint64
}

// NewLogTracker returns a tracker reporting through log. Steps are
// logged every stepEvery increments (0 disables step logging).
func NewLogTracker(log zerolog.Logger, stepEvery uint64) *LogTracker {
	return &LogTracker{log: log, stepEvery: stepEvery}
}

// NewStage implements Tracker.
func (t *LogTracker) NewStage(desc string) {
	t.Open.NewStage(desc)
	t.log.Info().Str("stage", desc).Msg("stage started")
}

// SetPercent implements Tracker.
func (t *LogTracker) SetPercent(percent float64) bool {
	ok := t.Open.SetPercent(percent)
	t.log.Debug().Float64("percent", percent).Msg("progress")
	return ok
}

// IncSteps implements Tracker.
func (t *LogTracker) IncSteps() {
	t.Open.IncSteps()
	if t.stepEvery == 0 {
		return
	}
	if n := t.Steps(); n%t.stepEvery == 0 {
		t.log.Debug().Uint64("steps", n).Msg("progress")
	}
}

// SetFinished implements Tracker.
func (t *LogTracker) SetFinished() {
	t.Open.SetFinished()
	t.log.Info().Uint64("steps", t.Steps()).Msg("finished")
}
