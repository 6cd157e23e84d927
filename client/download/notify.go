package download

import (
	"fmt"
	"log/slog"
	"sync"
)

// Dispatcher runs observer callbacks on the notification channel of
// the caller's choice. Until it is shut down, Dispatch must run fn exactly
// once and must preserve the order in which functions are submitted.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to [Dispatcher].
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// inline runs callbacks on the notifier goroutine of each download.
var inline = DispatcherFunc(func(fn func()) { fn() })

// Loop is a [Dispatcher] running every callback on a single goroutine, so
// observers shared by several downloads never run concurrently.
type Loop struct {
	fns  chan func()
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewLoop starts a Loop buffering up to size pending callbacks.
func NewLoop(size int) *Loop {
	l := &Loop{
		fns:  make(chan func(), max(size, 0)),
		done: make(chan struct{}),
	}

	go func() {
		defer close(l.done)
		for fn := range l.fns {
			fn()
		}
	}()

	return l
}

// Dispatch queues fn behind the pending callbacks. Callbacks dispatched
// after Close are dropped.
func (l *Loop) Dispatch(fn func()) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return
	}
	l.fns <- fn
}

// Close stops accepting callbacks and blocks until the pending ones ran.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.fns)
	}
	l.mu.Unlock()

	<-l.done
}

// notifier is the producer side of a download's notification channel.
// The copy loop sends events, a dedicated goroutine hands them to the
// dispatcher in order. A panicking observer is logged and does not stop
// later events from being delivered.
type notifier struct {
	tag        string
	obs        Observer
	dispatcher Dispatcher
	logger     *slog.Logger

	events   chan Event
	done     chan struct{}
	terminal bool
}

func newNotifier(tag string, obs Observer, d Dispatcher, logger *slog.Logger) *notifier {
	n := &notifier{
		tag:        tag,
		obs:        obs,
		dispatcher: d,
		logger:     logger,
		events:     make(chan Event, 16),
		done:       make(chan struct{}),
	}

	go n.run()

	return n
}

func (n *notifier) run() {
	defer close(n.done)

	for ev := range n.events {
		n.dispatch(ev)
	}
}

// dispatch hands ev to the dispatcher. A dispatcher that panics loses the
// event but the download keeps going.
func (n *notifier) dispatch(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("dispatcher panicked", "tag", n.tag, "event", ev.Kind.String(), "panic", fmt.Sprint(r))
		}
	}()

	n.dispatcher.Dispatch(func() { n.deliver(ev) })
}

func (n *notifier) deliver(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("observer panicked", "tag", n.tag, "event", ev.Kind.String(), "panic", fmt.Sprint(r))
		}
	}()

	ev.Deliver(n.obs)
}

func (n *notifier) start(total int64) {
	n.emit(Event{Kind: EventStart, Tag: n.tag, Total: total})
}

func (n *notifier) progress(read, total int64, percent int) {
	n.emit(Event{Kind: EventProgress, Tag: n.tag, Read: read, Total: total, Percent: percent})
}

// succeed and fail end the sequence and block until the terminal event was
// handed to the dispatcher.
func (n *notifier) succeed(path string) {
	n.finish(Event{Kind: EventSuccess, Tag: n.tag, Path: path})
}

func (n *notifier) fail(err error) {
	n.finish(Event{Kind: EventError, Tag: n.tag, Err: err})
}

func (n *notifier) emit(ev Event) {
	if n.terminal {
		return
	}
	n.events <- ev
}

func (n *notifier) finish(ev Event) {
	if n.terminal {
		return
	}
	n.events <- ev
	n.terminal = true
	close(n.events)
	<-n.done
}
