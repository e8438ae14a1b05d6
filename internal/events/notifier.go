// Package events is the store's change notifier: a registry of listeners that are
// called synchronously, in registration order, after every committed mutation.
package events

import (
	"sync"
	"sync/atomic"
)

type subscription struct {
	fn      Listener
	removed atomic.Bool
}

// Notifier delivers events to listeners.
//
// A listener may itself mutate the store. The nested mutation's event is queued
// and delivered once the current pass over all listeners has finished, so every
// listener observes events in commit order and each pass sees one event only.
type Notifier struct {
	mu        sync.Mutex
	listeners []*subscription
	queue     []Event
	draining  bool
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn. The returned function unregisters it; calling it more
// than once is harmless. A listener removed during a pass is not called for the
// rest of that pass.
func (n *Notifier) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn}

	n.mu.Lock()
	n.listeners = append(n.listeners, sub)
	n.mu.Unlock()

	return func() {
		if !sub.removed.CompareAndSwap(false, true) {
			return
		}
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.listeners {
			if s == sub {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of registered listeners
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Enqueue schedules ev for the next delivery pass
func (n *Notifier) Enqueue(ev Event) {
	n.mu.Lock()
	n.queue = append(n.queue, ev)
	n.mu.Unlock()
}

// Publish enqueues ev and flushes
func (n *Notifier) Publish(ev Event) {
	n.Enqueue(ev)
	n.Flush()
}

// Flush runs delivery passes until the queue is empty. If a pass is already in
// progress further up the call stack (or on another goroutine) it returns
// immediately and that pass picks up the queued events.
func (n *Notifier) Flush() {
	n.mu.Lock()
	if n.draining {
		n.mu.Unlock()
		return
	}
	n.draining = true
	n.mu.Unlock()

	// A panicking listener must not leave the notifier stuck in draining mode
	finished := false
	defer func() {
		if !finished {
			n.mu.Lock()
			n.draining = false
			n.mu.Unlock()
		}
	}()

	for {
		n.mu.Lock()
		if len(n.queue) == 0 {
			n.draining = false
			finished = true
			n.mu.Unlock()
			return
		}
		ev := n.queue[0]
		n.queue[0] = Event{}
		n.queue = n.queue[1:]
		listeners := make([]*subscription, len(n.listeners))
		copy(listeners, n.listeners)
		n.mu.Unlock()

		for _, sub := range listeners {
			if sub.removed.Load() {
				continue
			}
			sub.fn(ev)
		}
	}
}
