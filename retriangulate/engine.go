package retriangulate

import (
	"container/heap"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
)

// sigItem is one queue entry: the signature plus an insertion sequence
// number for first-in-first-out tie breaking.
type sigItem struct {
	sig string
	seq uint64
}

// sigHeap pops the shortest signature first (a cheap proxy for the
// smallest object) and the oldest among equal lengths.
type sigHeap []sigItem

func (h sigHeap) Len() int { return len(h) }

func (h sigHeap) Less(i, j int) bool {
	if len(h[i].sig) != len(h[j].sig) {
		return len(h[i].sig) < len(h[j].sig)
	}
	return h[i].seq < h[j].seq
}

func (h sigHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *sigHeap) Push(x any) { *h = append(*h, x.(sigItem)) }

func (h *sigHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// engine is the shared state of one search. A single mutex guards the
// map, the queue, the worker bookkeeping and the termination flags;
// everything expensive runs outside it.
type engine[T Object] struct {
	maxSize int
	prop    Propagator[T]
	action  Action[T]
	tracker interface {
		IsCancelled() bool
		IncSteps()
	}

	mu       sync.Mutex
	cond     *sync.Cond
	nRunning int
	done     bool
	failure  error

	sigs  map[string]string // signature → predecessor signature
	queue sigHeap
	seq   uint64
}

// push enqueues a signature. Callers hold the lock.
func (e *engine[T]) push(sig string) {
	e.seq++
	heap.Push(&e.queue, sigItem{sig: sig, seq: e.seq})
}

// stopped reports whether workers should unwind. Callers hold the lock.
func (e *engine[T]) stopped() bool {
	return e.done || e.failure != nil
}

// seed processes the starting object before any worker launches.
// Returns true if the action finished the search immediately.
func (e *engine[T]) seed(obj T) bool {
	sig := obj.Sig()
	if e.action(sig, obj) {
		e.done = true
		return true
	}
	e.sigs[sig] = ""
	e.push(sig)
	return false
}

// candidate is handed to propagators as the emit callback. It inserts a
// newly seen signature, wakes sleeping workers, and runs the action
// under the lock. Returning true tells the propagator to stop.
func (e *engine[T]) candidate(alt T, derivedFrom string) bool {
	sig := alt.Sig()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped() {
		return true
	}
	if _, seen := e.sigs[sig]; seen {
		return false
	}
	e.sigs[sig] = derivedFrom

	wasEmpty := len(e.queue) == 0
	e.push(sig)
	if wasEmpty {
		// Workers that found the queue empty are parked; hand them the
		// new work.
		e.cond.Broadcast()
	}

	if e.action(sig, alt) {
		e.done = true
		e.cond.Broadcast()
		return true
	}
	return false
}

// propagate runs one unit of unlocked work, converting a propagator
// panic into an error so it never crosses the lock.
func (e *engine[T]) propagate(sig string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()
	return e.prop.PropagateFrom(sig, e.maxSize, e.candidate)
}

// processQueue is the worker loop. The lock is held except across the
// propagation call; a propagation failure poisons the shared state and
// every worker unwinds.
func (e *engine[T]) processQueue() error {
	e.mu.Lock()
	for {
		for !e.stopped() && len(e.queue) > 0 {
			if e.tracker != nil && e.tracker.IsCancelled() {
				break
			}

			next := heap.Pop(&e.queue).(sigItem)

			// Propagation is the expensive part: run it unlocked. The
			// signature strings in the queue are immutable values, so
			// concurrent map growth cannot invalidate them.
			e.mu.Unlock()
			perr := e.propagate(next.sig)
			e.mu.Lock()

			if perr != nil && e.failure == nil {
				e.failure = perr
				e.cond.Broadcast()
			}
			if e.tracker != nil {
				e.tracker.IncSteps()
			}
		}

		// Nothing left here. Tell the others; maybe one of them refills
		// the queue while we sleep.
		e.nRunning--
		if e.nRunning == 0 {
			e.cond.Broadcast()
			e.mu.Unlock()
			return nil
		}
		e.cond.Wait()
		if e.nRunning == 0 || e.stopped() {
			e.mu.Unlock()
			return nil
		}
		e.nRunning++
	}
}

// Retriangulate explores every object reachable from obj under the
// propagator's moves, keeping sizes at most obj.Size()+height (no bound
// when height < 0). The action fires exactly once per distinct
// signature, starting with obj's own; if it ever returns true the
// search stops and Retriangulate returns true.
//
// threads come from WithThreads (default 1, fully deterministic).
// Cancellation through WithTracker returns ErrCancelled.
func Retriangulate[T Object](obj T, height int, prop Propagator[T],
	action Action[T], opts ...Option) (bool, error) {
	if prop == nil || action == nil {
		return false, fmt.Errorf("%w: nil propagator or action", ErrOptionViolation)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	if o.Tracker != nil {
		o.Tracker.NewStage(prop.Stage())
		defer o.Tracker.SetFinished()
	}

	// No moves exist on an empty object.
	if obj.IsEmpty() {
		return false, nil
	}

	maxSize := math.MaxInt - 8 // headroom for size+k budget tests
	if height >= 0 {
		maxSize = obj.Size() + height
	}

	e := &engine[T]{
		maxSize: maxSize,
		prop:    prop,
		action:  action,
		sigs:    make(map[string]string),
	}
	e.cond = sync.NewCond(&e.mu)
	if o.Tracker != nil {
		e.tracker = o.Tracker
	}

	if e.seed(obj) {
		return true, nil
	}

	e.nRunning = o.Threads
	var eg errgroup.Group
	for i := 0; i < o.Threads; i++ {
		eg.Go(e.processQueue)
	}
	if err := eg.Wait(); err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failure != nil {
		return false, e.failure
	}
	if o.Tracker != nil && o.Tracker.IsCancelled() && !e.done {
		return false, ErrCancelled
	}
	return e.done, nil
}
