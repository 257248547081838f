package engine

import "testing"

func TestEventInvoke(t *testing.T) {
	var e Event

	count := 0
	e.AddListener(func() { count++ })
	e.AddListener(func() { count++ })

	e.Invoke()
	if count != 2 {
		t.Errorf("Expected 2 invocations, got %d", count)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}
}

func TestEventRemoveListenerByID(t *testing.T) {
	var e Event

	var fired []string
	idA := e.AddListener(func() { fired = append(fired, "a") })
	e.AddListener(func() { fired = append(fired, "b") })

	e.RemoveListener(idA)
	e.Invoke()

	if len(fired) != 1 || fired[0] != "b" {
		t.Errorf("Expected only b to fire, got %v", fired)
	}

	// Stale id removal is a no-op
	e.RemoveListener(idA)
	e.RemoveListener(999)
}

func TestEventNilListener(t *testing.T) {
	var e Event

	if id := e.AddListener(nil); id != 0 {
		t.Error("Nil listener should not be registered")
	}
	e.Invoke()
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]

	var got []int
	id := e.AddListener(func(v int) { got = append(got, v) })

	e.Invoke(7)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("Expected [7], got %v", got)
	}

	e.RemoveListener(id)
	e.Invoke(8)
	if len(got) != 1 {
		t.Error("Listener still firing after removal")
	}
}
