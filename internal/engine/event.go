package engine

// Event is a Unity-style multi-cast event.
// Function values can't be compared in Go, so AddListener hands back an id
// and removal goes through that id instead of the callback itself.
type Event struct {
	listeners []eventListener
	nextID    int
}

type eventListener struct {
	id int
	fn func()
}

// AddListener adds a callback and returns an id for later removal.
func (e *Event) AddListener(callback func()) int {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, eventListener{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener removes the callback registered under id.
// Removing an unknown or already-removed id is a no-op.
func (e *Event) RemoveListener(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in registration order
func (e *Event) Invoke() {
	for _, l := range e.listeners {
		l.fn()
	}
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []argListener[T]
	nextID    int
}

type argListener[T any] struct {
	id int
	fn func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) int {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, argListener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
