package events

import (
	"reflect"
	"testing"
)

func TestNotifier_CallsListenersInRegistrationOrder(t *testing.T) {
	n := NewNotifier()
	var calls []string

	n.Subscribe(func(Event) { calls = append(calls, "first") })
	n.Subscribe(func(Event) { calls = append(calls, "second") })
	n.Subscribe(func(Event) { calls = append(calls, "third") })

	n.Publish(Event{Type: EventTaskCreated, Sequence: 1})

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("Expected call order %v, got %v", want, calls)
	}
}

func TestNotifier_NoCoalescing(t *testing.T) {
	n := NewNotifier()
	count := 0
	n.Subscribe(func(Event) { count++ })

	for i := 1; i <= 5; i++ {
		n.Publish(Event{Type: EventFilterSet, Sequence: int64(i)})
	}

	if count != 5 {
		t.Errorf("Expected 5 deliveries, got %d", count)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()
	count := 0
	unsubscribe := n.Subscribe(func(Event) { count++ })

	n.Publish(Event{Sequence: 1})
	unsubscribe()
	unsubscribe() // second call is a no-op
	n.Publish(Event{Sequence: 2})

	if count != 1 {
		t.Errorf("Expected 1 delivery before unsubscribe, got %d", count)
	}
	if n.Len() != 0 {
		t.Errorf("Expected no listeners, got %d", n.Len())
	}
}

func TestNotifier_UnsubscribeDuringPass(t *testing.T) {
	n := NewNotifier()
	var calls []string
	var unsubscribeSecond func()

	n.Subscribe(func(Event) {
		calls = append(calls, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = n.Subscribe(func(Event) { calls = append(calls, "second") })

	n.Publish(Event{Sequence: 1})

	if !reflect.DeepEqual(calls, []string{"first"}) {
		t.Errorf("Removed listener should not run later in the same pass, got %v", calls)
	}
}

func TestNotifier_NestedPublishIsQueued(t *testing.T) {
	n := NewNotifier()
	var log []string

	n.Subscribe(func(ev Event) {
		log = append(log, "a:"+string(ev.Type))
		if ev.Type == EventTaskCreated {
			n.Publish(Event{Type: EventActivityAdded, Sequence: ev.Sequence + 1})
		}
	})
	n.Subscribe(func(ev Event) {
		log = append(log, "b:"+string(ev.Type))
	})

	n.Publish(Event{Type: EventTaskCreated, Sequence: 1})

	want := []string{
		"a:task_created",
		"b:task_created",
		"a:activity_added",
		"b:activity_added",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected nested event after outer pass:\n got  %v\n want %v", log, want)
	}
}

func TestNotifier_PanicDoesNotWedgeDelivery(t *testing.T) {
	n := NewNotifier()
	shouldPanic := true
	count := 0
	n.Subscribe(func(Event) {
		if shouldPanic {
			panic("boom")
		}
		count++
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected listener panic to propagate")
			}
		}()
		n.Publish(Event{Sequence: 1})
	}()

	shouldPanic = false
	n.Publish(Event{Sequence: 2})

	if count != 1 {
		t.Errorf("Expected delivery to resume after panic, got %d calls", count)
	}
}
