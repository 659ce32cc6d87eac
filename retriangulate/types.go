// Package retriangulate: capability interfaces, sentinel errors and
// functional options.

package retriangulate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lowtopo/progress"
)

var (
	// ErrInvalidSignature is returned when a signature cannot be decoded
	// back into an object.
	ErrInvalidSignature = errors.New("retriangulate: malformed signature")

	// ErrCancelled is returned when the progress tracker requests
	// cancellation mid-search.
	ErrCancelled = errors.New("retriangulate: search cancelled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("retriangulate: invalid option supplied")

	// ErrWorkerPanic is returned when a worker goroutine panicked; the
	// shared state is poisoned and the search result is meaningless.
	ErrWorkerPanic = errors.New("retriangulate: worker panic")
)

// Object is the minimal surface every search target exposes: a size
// (top-dimensional simplices, or crossings for a link diagram), an
// emptiness test, and a canonical signature that is equal exactly for
// combinatorially equivalent objects.
type Object interface {
	Size() int
	IsEmpty() bool
	Sig() string
}

// Propagator supplies the domain-specific move enumeration. The engine
// never mutates objects itself: every candidate is produced inside
// PropagateFrom by copy-then-transform.
//
// PropagateFrom must reconstruct the object behind sig, enumerate every
// legal single move whose result has size at most maxSize, and call
// emit for each result (passing sig as derivedFrom). If emit returns
// true the propagator must stop enumerating and return immediately.
type Propagator[T Object] interface {
	// Stage is a human-readable description for progress reporting.
	Stage() string
	PropagateFrom(sig string, maxSize int, emit func(alt T, derivedFrom string) bool) error
}

// Action receives each newly discovered signature together with the
// object that produced it. The object is handed over, never shared:
// the callee owns it. Returning true stops the search.
//
// Actions are invoked while the engine lock is held; they must be
// short, non-blocking, and must not re-enter the engine.
type Action[T Object] func(sig string, obj T) bool

// PlainAction is the signature-free variant.
type PlainAction[T Object] func(obj T) bool

// Plain adapts a PlainAction to an Action by dropping the signature.
func Plain[T Object](fn PlainAction[T]) Action[T] {
	return func(_ string, obj T) bool { return fn(obj) }
}

// Option configures a search via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Threads is the number of worker goroutines; 1 gives a fully
	// deterministic traversal.
	Threads int

	// Tracker receives step counts and may cancel the search.
	Tracker progress.Tracker

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the single-threaded, untracked configuration.
func DefaultOptions() Options {
	return Options{Threads: 1}
}

// WithThreads sets the worker count. Values below one are an option
// violation.
func WithThreads(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Threads must be at least 1 (%d)",
				ErrOptionViolation, n)
			return
		}
		o.Threads = n
	}
}

// WithTracker attaches a progress tracker.
func WithTracker(t progress.Tracker) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracker = t
		}
	}
}
