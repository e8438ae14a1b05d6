package events

// EventPublisher is what the store needs from a change notifier. Enqueue is called
// while the store still holds its commit lock, Flush after it has released it, so
// events reach listeners in commit order even when a listener mutates the store.
type EventPublisher interface {
	// Subscribe registers fn and returns a function that removes it
	Subscribe(fn Listener) (unsubscribe func())

	// Enqueue schedules an event for delivery without running any listener
	Enqueue(ev Event)

	// Flush delivers queued events unless a delivery pass is already running
	Flush()
}

// Compile-time verification that *Notifier implements EventPublisher
var _ EventPublisher = (*Notifier)(nil)
