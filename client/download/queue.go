package download

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// WorkFunc performs one download and returns the written path.
type WorkFunc func(ctx context.Context) (string, error)

// Queue runs downloads concurrently, optionally bounded.
type Queue struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	sem      chan struct{}
	shutdown atomic.Bool
	errs     []error
}

// newQueue returns a Queue running at most maxConcurrent functions at once.
// If maxConcurrent <= 0, concurrency is unlimited.
func newQueue(maxConcurrent int) *Queue {
	q := &Queue{}
	if maxConcurrent > 0 {
		q.sem = make(chan struct{}, maxConcurrent)
	}
	return q
}

// Wait blocks until all downloads in the queue complete.
// Returns all errors joined via errors.Join.
func (q *Queue) Wait() error {
	q.wg.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()

	return errors.Join(q.errs...)
}

// Shutdown prevents queued work that has not started from executing.
func (q *Queue) Shutdown() {
	q.shutdown.Store(true)
}

// Start launches fn in a new goroutine managed by the queue and returns
// a Result tracking it. When fn never runs, because ctx ended while waiting
// for a slot or the queue was shut down, reject is called with the reason
// before the Result completes. A non-nil error returned by reject replaces
// the reason.
func (q *Queue) Start(ctx context.Context, tag string, fn WorkFunc, reject func(error) error) *Result {
	ctx, cancel := context.WithCancel(ctx)
	r := &Result{
		tag:    tag,
		done:   make(chan struct{}),
		cancel: cancel,
		queue:  q,
	}

	fail := func(err error) {
		if reject != nil {
			if rerr := reject(err); rerr != nil {
				err = rerr
			}
		}
		r.err = err
		q.recordErr(err)
	}

	q.wg.Add(1)
	go func() {
		defer func() {
			cancel()
			close(r.done)
			q.wg.Done()
		}()

		if q.sem != nil {
			select {
			case q.sem <- struct{}{}:
				defer func() {
					<-q.sem
				}()
			case <-ctx.Done():
				fail(ctx.Err())
				return
			}
		}

		if q.shutdown.Load() {
			fail(ErrGroupShutdown)
			return
		}

		r.path, r.err = fn(ctx)
		if r.err != nil {
			q.recordErr(r.err)
		}
	}()

	return r
}

// recordErr appends err to the queue's error slice under the mutex.
func (q *Queue) recordErr(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.errs = append(q.errs, err)
}
