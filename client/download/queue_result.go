package download

import "context"

// Result represents an in-flight or completed download.
type Result struct {
	tag    string
	done   chan struct{}
	path   string
	err    error
	cancel context.CancelFunc
	queue  *Queue
}

// Tag returns the tag the download's notifications carry.
func (r *Result) Tag() string { return r.tag }

// Done returns a channel that is closed when the download completes and its
// terminal notification has been handed to the dispatcher.
func (r *Result) Done() <-chan struct{} { return r.done }

// Err blocks until this download completes and returns its error.
func (r *Result) Err() error {
	<-r.done
	return r.err
}

// Path blocks until this download completes and returns the written file,
// or "" when it failed.
func (r *Result) Path() string {
	<-r.done
	return r.path
}

// Wait blocks until all downloads sharing this result's queue complete.
// Returns all errors joined.
func (r *Result) Wait() error {
	return r.queue.Wait()
}

// Cancel cancels this download's context. The download ends with
// [ErrDownloadCancelled] unless it already finished.
func (r *Result) Cancel() {
	r.cancel()
}
